package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"StockTracker/internal/tracker"
)

const (
	menuList    = "List NSE stocks"
	menuPrice   = "Latest price"
	menuDetails = "Stock details"
	menuCompare = "Compare stocks"
	menuTrend   = "Moving averages"
	menuExit    = "Exit"
)

var menuOptions = []string{menuList, menuPrice, menuDetails, menuCompare, menuTrend, menuExit}

// RunMenu drives the interactive loop until the user exits. Fetch and
// listing failures surface as warnings and the loop continues; a store
// failure during a comparison is the one error that ends it.
func (a *App) RunMenu() error {
	for {
		var choice string
		prompt := &survey.Select{
			Message:  "What would you like to do?",
			Options:  menuOptions,
			PageSize: len(menuOptions),
		}
		if err := survey.AskOne(prompt, &choice); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		var err error
		switch choice {
		case menuList:
			err = a.showList()
		case menuPrice:
			err = a.withTicker("Ticker to look up:", a.showPrice)
		case menuDetails:
			err = a.withTicker("Ticker to describe:", a.showDetails)
		case menuCompare:
			err = a.compareFlow()
		case menuTrend:
			err = a.withTicker("Ticker to chart:", a.showTrend)
		case menuExit:
			return nil
		}

		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			// Compare only errors on a store write; that is fatal.
			if choice == menuCompare {
				return err
			}
			fmt.Println(warn(err.Error()))
		}
	}
}

func (a *App) withTicker(message string, action func(string) error) error {
	symbol, err := promptTicker(message)
	if err != nil {
		return err
	}
	return action(symbol)
}

func (a *App) compareFlow() error {
	var raw string
	prompt := &survey.Input{Message: "Tickers to compare (comma-separated):"}
	if err := survey.AskOne(prompt, &raw, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	return a.showCompare(strings.Split(raw, ","))
}

// tickerPattern admits NSE tickers like TCS, M&M and BAJAJ-AUTO, plus
// already-qualified forms like INFY.NS and index symbols like ^NSEI.
var tickerPattern = regexp.MustCompile(`^[A-Za-z0-9.^&-]+$`)

func promptTicker(message string) (string, error) {
	var symbol string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &symbol,
		survey.WithValidator(survey.Required),
		survey.WithValidator(tickerValidator))
	if err != nil {
		return "", err
	}
	return tracker.Normalize(symbol), nil
}

func tickerValidator(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected a ticker symbol")
	}
	s = strings.TrimSpace(s)
	if len(s) > 20 {
		return fmt.Errorf("ticker symbol too long")
	}
	if !tickerPattern.MatchString(s) {
		return fmt.Errorf("tickers may contain letters, digits, '.', '^', '&' and '-' only")
	}
	return nil
}
