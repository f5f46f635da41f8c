package combinator

import "testing"

func TestGenerateBudgetsCoversEvenLevelsAscending(t *testing.T) {
	budgets := GenerateBudgets(10, 16, false)
	if len(budgets) != 4 {
		t.Fatalf("got %d budgets, want 4 (10,12,14,16)", len(budgets))
	}
	prev := -1
	for _, b := range budgets {
		if int(b.Level) <= prev {
			t.Fatalf("budgets not ascending: %+v", budgets)
		}
		prev = int(b.Level)
	}
	if int(budgets[0].Level) != 10 || int(budgets[len(budgets)-1].Level) != 16 {
		t.Fatalf("unexpected level range: %+v", budgets)
	}
}

func TestGenerateBudgetsSingleLevel(t *testing.T) {
	budgets := GenerateBudgets(50, 50, true)
	if len(budgets) != 1 || int(budgets[0].Level) != 50 {
		t.Fatalf("expected single level-50 budget, got %+v", budgets)
	}
}
