package services

import "github.com/shopspring/decimal"

// DefaultVATRate is the Philippine VAT the hotel was configured with.
var DefaultVATRate = decimal.RequireFromString("0.12")

type Bill struct {
	Nights       int             `json:"nights"`
	RoomRate     decimal.Decimal `json:"roomRate"`
	RoomCharges  decimal.Decimal `json:"roomCharges"`
	ExtraCharges decimal.Decimal `json:"extraCharges"`
	Taxable      decimal.Decimal `json:"taxable"`
	VATRate      decimal.Decimal `json:"vatRate"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
}

// ComputeBill prices a stay. Amounts keep full precision; round only when
// presenting them.
func ComputeBill(nights int, roomRate, extraCharges, vatRate decimal.Decimal) Bill {
	roomCharges := roomRate.Mul(decimal.NewFromInt(int64(nights)))
	taxable := roomCharges.Add(extraCharges)
	tax := taxable.Mul(vatRate)
	return Bill{
		Nights:       nights,
		RoomRate:     roomRate,
		RoomCharges:  roomCharges,
		ExtraCharges: extraCharges,
		Taxable:      taxable,
		VATRate:      vatRate,
		Tax:          tax,
		Total:        taxable.Add(tax),
	}
}

// BillingEngine carries the configured VAT rate into ComputeBill.
type BillingEngine struct {
	VATRate decimal.Decimal
}

func NewBillingEngine(vatRate decimal.Decimal) BillingEngine {
	return BillingEngine{VATRate: vatRate}
}

func (b BillingEngine) Bill(nights int, roomRate, extraCharges decimal.Decimal) Bill {
	return ComputeBill(nights, roomRate, extraCharges, b.VATRate)
}
