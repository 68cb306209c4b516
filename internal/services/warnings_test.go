package services

import (
	"context"
	"sync"
	"testing"

	"github.com/epeers/estateplan/internal/models"
)

func TestWarningCollector_BasicUsage(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	AddWarning(ctx, models.Warning{Code: models.WarnInputsUnavailable, Message: "no assets"})
	AddWarning(ctx, models.Warning{Code: models.WarnUnhandledRouting, Message: "no rule"})

	warnings := wc.GetWarnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].Code != models.WarnInputsUnavailable {
		t.Errorf("expected code %s, got %s", models.WarnInputsUnavailable, warnings[0].Code)
	}
	if warnings[1].Code != models.WarnUnhandledRouting {
		t.Errorf("expected code %s, got %s", models.WarnUnhandledRouting, warnings[1].Code)
	}
}

func TestWarningCollector_NoCollectorNoPanic(t *testing.T) {
	AddWarning(context.Background(), models.Warning{
		Code:    models.WarnUnhandledRouting,
		Message: "dropped",
	})
}

func TestWarningCollector_EmptyByDefault(t *testing.T) {
	_, wc := NewWarningContext(context.Background())
	if warnings := wc.GetWarnings(); warnings != nil {
		t.Errorf("expected nil warnings, got %v", warnings)
	}
}

func TestWarningCollector_ReturnsCopy(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())
	AddWarning(ctx, models.Warning{Code: models.WarnPlanHasConflicts, Message: "first"})

	got := wc.GetWarnings()
	got[0].Message = "changed"

	if wc.GetWarnings()[0].Message != "first" {
		t.Errorf("collector contents changed through a returned slice")
	}
}

func TestWarningCollector_ConcurrentSafe(t *testing.T) {
	ctx, wc := NewWarningContext(context.Background())

	var wg sync.WaitGroup
	n := 100
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			AddWarning(ctx, models.Warning{Code: models.WarnUnhandledRouting, Message: "concurrent warning"})
		}()
	}
	wg.Wait()

	if warnings := wc.GetWarnings(); len(warnings) != n {
		t.Errorf("expected %d warnings, got %d", n, len(warnings))
	}
}

func TestPreviewScenario_ForwardsDiagnostics(t *testing.T) {
	svc := NewScenarioService(nil, nil)
	ctx, wc := NewWarningContext(context.Background())

	req := &models.ScenarioPreviewRequest{
		Kind:       models.ScenarioClientFirst,
		ClientName: "Alice",
		Assets: &models.RawAssets{
			Bank: []models.RawBankAccount{{
				ID:       "1",
				BankName: "First Federal",
				RawOwnership: models.RawOwnership{
					OwnedBy:          "Client",
					OwnershipForm:    "JTWROS",
					ApproximateValue: models.Number(1000),
				},
			}},
		},
	}

	sc, err := svc.PreviewScenario(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	warnings := wc.GetWarnings()
	if len(warnings) != 1 || warnings[0].Code != models.WarnUnhandledRouting {
		t.Fatalf("expected one %s warning, got %v", models.WarnUnhandledRouting, warnings)
	}
	if len(sc.Diagnostics) != 1 {
		t.Errorf("expected the diagnostic to stay on the scenario, got %d", len(sc.Diagnostics))
	}
}

func TestPreviewValidation_ReportsMissingAssetsAndConflicts(t *testing.T) {
	svc := NewValidationService(nil, nil)
	ctx, wc := NewWarningContext(context.Background())

	req := &models.ValidationPreviewRequest{
		Plan: models.EstatePlan{
			ClientWill: &models.Will{
				Executors: []models.Executor{{Name: "Dana", Role: models.ExecutorPrimary}},
				SpecificDevises: []models.SpecificGift{
					{AssetID: "h1", AssetIDName: "realEstate", AssetName: "Home"},
					{AssetID: "h1", AssetIDName: "realEstate", AssetName: "Home"},
				},
				ResiduaryPrimary: []models.BeneficiaryDesignation{{Name: "Eli", Percentage: 100}},
			},
		},
	}

	v := svc.PreviewValidation(ctx, req)
	if !v.HasConflicts {
		t.Fatalf("expected the duplicate devise to be reported")
	}

	codes := map[models.WarningCode]bool{}
	for _, w := range wc.GetWarnings() {
		codes[w.Code] = true
	}
	if !codes[models.WarnInputsUnavailable] {
		t.Errorf("expected %s for a request without assets", models.WarnInputsUnavailable)
	}
	if !codes[models.WarnPlanHasConflicts] {
		t.Errorf("expected %s for a plan with conflicts", models.WarnPlanHasConflicts)
	}
}
