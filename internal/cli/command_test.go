package cli

import (
	"testing"

	"github.com/dmitrijs2005/cali/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Command
	}{
		{"bare amount", []string{"500"}, Command{Kind: KindLog, Category: nutrition.Calories, Amount: 500}},
		{"bare fractional amount", []string{"250.5"}, Command{Kind: KindLog, Category: nutrition.Calories, Amount: 250.5}},
		{"log calories", []string{"log", "calories", "500"}, Command{Kind: KindLog, Category: nutrition.Calories, Amount: 500}},
		{"log water", []string{"log", "water", "16"}, Command{Kind: KindLog, Category: nutrition.Water, Amount: 16}},
		{"log protein", []string{"log", "protein", "30"}, Command{Kind: KindLog, Category: nutrition.Protein, Amount: 30}},
		{"log carbs", []string{"log", "carbs", "45.5"}, Command{Kind: KindLog, Category: nutrition.Carbs, Amount: 45.5}},
		{"log fat", []string{"log", "fat", "12"}, Command{Kind: KindLog, Category: nutrition.Fat, Amount: 12}},
		{"log negative", []string{"log", "fat", "-5"}, Command{Kind: KindLog, Category: nutrition.Fat, Amount: -5}},
		{"log zero", []string{"log", "water", "0"}, Command{Kind: KindLog, Category: nutrition.Water}},
		{"log mixed case category", []string{"log", "Protein", "1"}, Command{Kind: KindLog, Category: nutrition.Protein, Amount: 1}},
		{"summary today", []string{"summary"}, Command{Kind: KindSummary}},
		{"summary --date", []string{"summary", "--date", "2024-01-15"}, Command{Kind: KindSummary, Date: "2024-01-15"}},
		{"summary -d", []string{"summary", "-d", "2024-01-10"}, Command{Kind: KindSummary, Date: "2024-01-10"}},
		{"summary --date=", []string{"summary", "--date=2024-01-10"}, Command{Kind: KindSummary, Date: "2024-01-10"}},
		{"history", []string{"history"}, Command{Kind: KindHistory}},
		{"reset", []string{"reset"}, Command{Kind: KindReset}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCommand(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"eat"}, `unknown command "eat"`},
		{"log without category", []string{"log"}, "missing category"},
		{"log unknown category", []string{"log", "sugar", "5"}, `unknown category: "sugar"`},
		{"log without amount", []string{"log", "water"}, "missing amount"},
		{"log non-numeric amount", []string{"log", "water", "lots"}, `invalid amount "lots"`},
		{"log NaN", []string{"log", "water", "NaN"}, `invalid amount "NaN"`},
		{"log Inf", []string{"log", "water", "+Inf"}, `invalid amount "+Inf"`},
		{"log extra args", []string{"log", "water", "5", "6"}, "unexpected arguments: 6"},
		{"bare amount extra args", []string{"500", "600"}, "unexpected arguments: 600"},
		{"summary unknown flag", []string{"summary", "--week"}, "flag provided but not defined"},
		{"summary positional", []string{"summary", "2024-01-15"}, "unexpected arguments: 2024-01-15"},
		{"history extra", []string{"history", "all"}, "history: unexpected arguments: all"},
		{"reset extra", []string{"reset", "now"}, "reset: unexpected arguments: now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCommand(tt.args)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tt.want)
		})
	}
}

func TestParseCommand_Help(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"summary", "-h"}} {
		_, err := parseCommand(args)
		require.ErrorIs(t, err, errShowHelp)
	}
}

func TestCommand_Mutates(t *testing.T) {
	assert.True(t, Command{Kind: KindLog}.Mutates())
	assert.True(t, Command{Kind: KindReset}.Mutates())
	assert.False(t, Command{Kind: KindSummary}.Mutates())
	assert.False(t, Command{Kind: KindHistory}.Mutates())
}
