package models

import "github.com/shopspring/decimal"

type HotelSetting struct {
	HotelName    string          `json:"hotelName"`
	HotelAddress string          `json:"hotelAddress"`
	HotelContact string          `json:"hotelContact"`
	VATRate      decimal.Decimal `json:"vatRate"`
}
