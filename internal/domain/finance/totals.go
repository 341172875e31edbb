package finance

import (
	"sort"
)

// DonationTotals sums legacy donations by direction
type DonationTotals struct {
	Income      Amount
	Expenditure Amount
	Balance     Amount
}

// RecordTotals sums financial records by type. TotalIncome covers every
// matched record and the three buckets partition it.
type RecordTotals struct {
	Offerings   Amount
	Donations   Amount
	ChurchTax   Amount
	TotalIncome Amount
}

// YearTotal is one point of a yearly time series
type YearTotal struct {
	Year  int
	Total Amount
}

// SkipFunc is called for every entry left out of a sum because its amount is
// not numeric
type SkipFunc func(id string, raw string)

// SumDonations computes income, expenditure and balance
func SumDonations(donations []Donation, skip SkipFunc) DonationTotals {
	t := DonationTotals{Income: ZeroAmount(), Expenditure: ZeroAmount()}
	for i := range donations {
		d := &donations[i]
		if !d.Amount.IsValid() {
			reportSkip(skip, d.ID.String(), d.Amount.Raw())
			continue
		}
		switch d.Type {
		case DonationTypeIncome:
			t.Income = t.Income.Add(d.Amount)
		case DonationTypeExpenditure:
			t.Expenditure = t.Expenditure.Add(d.Amount)
		}
	}
	t.Balance = t.Income.Sub(t.Expenditure)
	return t
}

// SumRecords computes the per-type buckets and the overall income
func SumRecords(records []Record, skip SkipFunc) RecordTotals {
	t := RecordTotals{
		Offerings:   ZeroAmount(),
		Donations:   ZeroAmount(),
		ChurchTax:   ZeroAmount(),
		TotalIncome: ZeroAmount(),
	}
	for i := range records {
		r := &records[i]
		if !r.Amount.IsValid() {
			reportSkip(skip, r.ID.String(), r.Amount.Raw())
			continue
		}
		switch r.Type {
		case RecordTypeOffering:
			t.Offerings = t.Offerings.Add(r.Amount)
		case RecordTypeDonation:
			t.Donations = t.Donations.Add(r.Amount)
		case RecordTypeChurchTax:
			t.ChurchTax = t.ChurchTax.Add(r.Amount)
		default:
			// only typed records count towards the total so the buckets stay a partition
			continue
		}
		t.TotalIncome = t.TotalIncome.Add(r.Amount)
	}
	return t
}

// SumExpenses adds up expense amounts, skipping non-numeric ones
func SumExpenses(expenses []Expense, skip SkipFunc) Amount {
	total := ZeroAmount()
	for i := range expenses {
		e := &expenses[i]
		if !e.Amount.IsValid() {
			reportSkip(skip, e.ID.String(), e.Amount.Raw())
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// SortYears de-duplicates years and sorts them in the given order
func SortYears(years []int, order SortOrder) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, y := range years {
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		out = append(out, y)
	}
	if order == SortAsc {
		sort.Ints(out)
	} else {
		sort.Sort(sort.Reverse(sort.IntSlice(out)))
	}
	return out
}

// MergeYearTotals folds per-year partial sums into an ascending series.
// Years without entries are not filled in.
func MergeYearTotals(rows []YearTotal, skip SkipFunc) []YearTotal {
	byYear := make(map[int]Amount, len(rows))
	for _, row := range rows {
		if !row.Total.IsValid() {
			reportSkip(skip, "", row.Total.Raw())
			continue
		}
		if acc, ok := byYear[row.Year]; ok {
			byYear[row.Year] = acc.Add(row.Total)
		} else {
			byYear[row.Year] = row.Total
		}
	}
	out := make([]YearTotal, 0, len(byYear))
	for year, total := range byYear {
		out = append(out, YearTotal{Year: year, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

func reportSkip(skip SkipFunc, id, raw string) {
	if skip != nil {
		skip(id, raw)
	}
}
