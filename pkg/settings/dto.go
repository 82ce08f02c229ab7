package settings

import (
	"encoding/json"
	"fmt"

	"github.com/moneystream/moneystream/internal/date"
	"github.com/shopspring/decimal"
)

type SettingsDTO struct {
	InitialBalance       json.Number `json:"initialBalance"`
	BalanceSetDate       string      `json:"balanceSetDate"`
	ShowDaysIndicator    bool        `json:"showDaysIndicator"`
	ShowBalanceIndicator bool        `json:"showBalanceIndicator"`
}

func SettingsToDTO(s Settings) SettingsDTO {
	return SettingsDTO{
		InitialBalance:       json.Number(s.InitialBalance.String()),
		BalanceSetDate:       s.BalanceSetDate.WireString(),
		ShowDaysIndicator:    s.ShowDaysIndicator,
		ShowBalanceIndicator: s.ShowBalanceIndicator,
	}
}

func DTOToSettings(dto SettingsDTO) (Settings, error) {
	initialBalance, err := decimal.NewFromString(dto.InitialBalance.String())
	if err != nil {
		return Settings{}, fmt.Errorf("invalid initialBalance %q: %w", dto.InitialBalance, err)
	}
	balanceSetDate, err := date.ParseWire(dto.BalanceSetDate)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid balanceSetDate: %w", err)
	}
	return Settings{
		InitialBalance:       initialBalance,
		BalanceSetDate:       balanceSetDate,
		ShowDaysIndicator:    dto.ShowDaysIndicator,
		ShowBalanceIndicator: dto.ShowBalanceIndicator,
	}, nil
}
