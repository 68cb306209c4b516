package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/epeers/estateplan/internal/models"
)

// csvCategories maps the lowercased category column, with spaces, dashes and
// underscores removed, to an intake form
var csvCategories = map[string]models.Category{
	"realestate":        models.CategoryRealEstate,
	"property":          models.CategoryRealEstate,
	"bank":              models.CategoryBank,
	"bankaccount":       models.CategoryBank,
	"nq":                models.CategoryNQ,
	"brokerage":         models.CategoryNQ,
	"nqaccount":         models.CategoryNQ,
	"retirement":        models.CategoryRetirement,
	"retirementaccount": models.CategoryRetirement,
	"lifeinsurance":     models.CategoryLifeInsurance,
	"insurance":         models.CategoryLifeInsurance,
	"business":          models.CategoryBusiness,
	"businessinterest":  models.CategoryBusiness,
	"digital":           models.CategoryDigital,
	"digitalasset":      models.CategoryDigital,
	"other":             models.CategoryOther,
}

func csvCategory(raw string) models.Category {
	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(raw)))
	if c, ok := csvCategories[key]; ok {
		return c
	}
	return models.CategoryOther
}

// parseBeneficiaryList parses "Name:Pct;Name:Pct". A missing or unreadable
// percentage is recorded as 0.
func parseBeneficiaryList(s string) []models.BeneficiaryShare {
	var shares []models.BeneficiaryShare
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, pct, _ := strings.Cut(part, ":")
		share := models.BeneficiaryShare{Name: strings.TrimSpace(name)}
		if n := models.ParseFlexNumber(pct); n.Valid {
			share.Percentage = n.Value
		}
		shares = append(shares, share)
	}
	return shares
}

// ParseAssetsCSV parses an asset import CSV into an intake document.
// Required columns: category, name, approximate_value
// Optional columns: id, owned_by, ownership_form, real_estate_mode, has_bene,
// percent_owned, primary_beneficiaries (missing columns default to "")
// Rows with an empty name are skipped. Rows without an id are numbered by
// their row. Unknown categories import as Other.
func ParseAssetsCSV(r io.Reader) (models.RawAssets, int, error) {
	var doc models.RawAssets

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return doc, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIdx := make(map[string]int)
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	for _, col := range []string{"category", "name", "approximate_value"} {
		if _, ok := colIdx[col]; !ok {
			return doc, 0, fmt.Errorf("missing required column: %s", col)
		}
	}

	optionalCol := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	imported := 0
	rowNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return doc, 0, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++

		name := optionalCol(record, "name")
		if name == "" {
			continue
		}
		id := optionalCol(record, "id")
		if id == "" {
			id = fmt.Sprintf("row-%d", rowNum)
		}

		own := models.RawOwnership{
			OwnedBy:              optionalCol(record, "owned_by"),
			OwnershipForm:        optionalCol(record, "ownership_form"),
			HasBene:              models.BeneStatus(optionalCol(record, "has_bene")),
			PrimaryBeneficiaries: parseBeneficiaryList(optionalCol(record, "primary_beneficiaries")),
			ApproximateValue:     models.ParseFlexNumber(optionalCol(record, "approximate_value")),
			PercentOwned:         models.ParseFlexNumber(optionalCol(record, "percent_owned")),
		}

		switch csvCategory(optionalCol(record, "category")) {
		case models.CategoryRealEstate:
			doc.RealEstate = append(doc.RealEstate, models.RawRealEstate{
				ID: id, Address: name, DeedType: optionalCol(record, "real_estate_mode"), RawOwnership: own,
			})
		case models.CategoryBank:
			doc.Bank = append(doc.Bank, models.RawBankAccount{ID: id, BankName: name, RawOwnership: own})
		case models.CategoryNQ:
			doc.NQ = append(doc.NQ, models.RawBrokerageAccount{ID: id, Institution: name, RawOwnership: own})
		case models.CategoryRetirement:
			doc.Retirement = append(doc.Retirement, models.RawRetirementAccount{ID: id, Institution: name, RawOwnership: own})
		case models.CategoryLifeInsurance:
			doc.LifeInsurance = append(doc.LifeInsurance, models.RawLifeInsurance{ID: id, Company: name, RawOwnership: own})
		case models.CategoryBusiness:
			doc.Business = append(doc.Business, models.RawBusinessInterest{ID: id, BusinessName: name, RawOwnership: own})
		case models.CategoryDigital:
			doc.Digital = append(doc.Digital, models.RawDigitalAsset{ID: id, Platform: name, RawOwnership: own})
		default:
			doc.Other = append(doc.Other, models.RawOtherAsset{ID: id, Description: name, RawOwnership: own})
		}
		imported++
	}

	return doc, imported, nil
}
