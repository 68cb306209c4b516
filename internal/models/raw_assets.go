package models

import (
	"strings"
)

// RawAsset is one persisted intake record. Each category form is its own
// variant; the normalizer is the only place these are read.
type RawAsset interface {
	Category() Category
	RecordID() string
	DisplayName() string
	Ownership() RawOwnership
}

// RawOwnership holds the ownership and designation fields shared by every
// intake form, exactly as the form stored them.
type RawOwnership struct {
	OwnedBy                 string             `json:"owned_by"`
	OwnershipForm           string             `json:"ownership_form"`
	HasBene                 BeneStatus         `json:"has_bene"`
	PrimaryBeneficiaries    []BeneficiaryShare `json:"primary_beneficiaries"`
	ContingentBeneficiaries []BeneficiaryShare `json:"contingent_beneficiaries"`
	ApproximateValue        FlexNumber         `json:"approximate_value"`
	PercentOwned            FlexNumber         `json:"percent_owned"`
}

// RawRealEstate is a record from the real estate form
type RawRealEstate struct {
	ID           string `json:"id"`
	PropertyType string `json:"property_type"`
	Address      string `json:"address"`
	DeedType     string `json:"deed_type"`
	RawOwnership
}

func (r RawRealEstate) Category() Category      { return CategoryRealEstate }
func (r RawRealEstate) RecordID() string        { return r.ID }
func (r RawRealEstate) Ownership() RawOwnership { return r.RawOwnership }
func (r RawRealEstate) DisplayName() string {
	return joinName(r.Address, r.PropertyType, "Real Estate")
}

// RawBankAccount is a record from the bank accounts form
type RawBankAccount struct {
	ID          string `json:"id"`
	BankName    string `json:"bank_name"`
	AccountType string `json:"account_type"`
	RawOwnership
}

func (r RawBankAccount) Category() Category      { return CategoryBank }
func (r RawBankAccount) RecordID() string        { return r.ID }
func (r RawBankAccount) Ownership() RawOwnership { return r.RawOwnership }
func (r RawBankAccount) DisplayName() string {
	return joinName(r.BankName, r.AccountType, "Bank Account")
}

// RawBrokerageAccount is a non-qualified investment account
type RawBrokerageAccount struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	AccountType string `json:"account_type"`
	RawOwnership
}

func (r RawBrokerageAccount) Category() Category      { return CategoryNQ }
func (r RawBrokerageAccount) RecordID() string        { return r.ID }
func (r RawBrokerageAccount) Ownership() RawOwnership { return r.RawOwnership }
func (r RawBrokerageAccount) DisplayName() string {
	return joinName(r.Institution, r.AccountType, "Brokerage Account")
}

// RawRetirementAccount is an IRA, 401(k) or similar. These forms record the
// participant in Owner rather than OwnedBy.
type RawRetirementAccount struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	AccountType string `json:"account_type"`
	Owner       string `json:"owner"`
	RawOwnership
}

func (r RawRetirementAccount) Category() Category { return CategoryRetirement }
func (r RawRetirementAccount) RecordID() string   { return r.ID }
func (r RawRetirementAccount) Ownership() RawOwnership {
	o := r.RawOwnership
	if strings.TrimSpace(o.OwnedBy) == "" {
		o.OwnedBy = r.Owner
	}
	return o
}
func (r RawRetirementAccount) DisplayName() string {
	return joinName(r.Institution, r.AccountType, "Retirement Account")
}

// RawLifeInsurance is a policy record. The death benefit stands in for the
// value when no approximate value was entered.
type RawLifeInsurance struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	PolicyType   string     `json:"policy_type"`
	Insured      string     `json:"insured"`
	DeathBenefit FlexNumber `json:"death_benefit"`
	RawOwnership
}

func (r RawLifeInsurance) Category() Category { return CategoryLifeInsurance }
func (r RawLifeInsurance) RecordID() string   { return r.ID }
func (r RawLifeInsurance) Ownership() RawOwnership {
	o := r.RawOwnership
	if !o.ApproximateValue.Valid {
		o.ApproximateValue = r.DeathBenefit
	}
	return o
}
func (r RawLifeInsurance) DisplayName() string {
	return joinName(r.Company, r.PolicyType, "Life Insurance")
}

// RawBusinessInterest is an ownership stake in a closely held business
type RawBusinessInterest struct {
	ID                  string     `json:"id"`
	BusinessName        string     `json:"business_name"`
	EntityType          string     `json:"entity_type"`
	OwnershipPercentage FlexNumber `json:"ownership_percentage"`
	RawOwnership
}

func (r RawBusinessInterest) Category() Category { return CategoryBusiness }
func (r RawBusinessInterest) RecordID() string   { return r.ID }
func (r RawBusinessInterest) Ownership() RawOwnership {
	o := r.RawOwnership
	if !o.PercentOwned.Valid {
		o.PercentOwned = r.OwnershipPercentage
	}
	return o
}
func (r RawBusinessInterest) DisplayName() string {
	return joinName(r.BusinessName, r.EntityType, "Business Interest")
}

// RawDigitalAsset is a crypto wallet, domain, online account and so on
type RawDigitalAsset struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Description string `json:"description"`
	RawOwnership
}

func (r RawDigitalAsset) Category() Category      { return CategoryDigital }
func (r RawDigitalAsset) RecordID() string        { return r.ID }
func (r RawDigitalAsset) Ownership() RawOwnership { return r.RawOwnership }
func (r RawDigitalAsset) DisplayName() string {
	return joinName(r.Platform, r.Description, "Digital Asset")
}

// RawOtherAsset is anything that does not fit another form
type RawOtherAsset struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	RawOwnership
}

func (r RawOtherAsset) Category() Category      { return CategoryOther }
func (r RawOtherAsset) RecordID() string        { return r.ID }
func (r RawOtherAsset) Ownership() RawOwnership { return r.RawOwnership }
func (r RawOtherAsset) DisplayName() string {
	return joinName(r.Description, "", "Other Asset")
}

// RawAssets is the full intake document, one slice per form
type RawAssets struct {
	RealEstate    []RawRealEstate        `json:"real_estate"`
	Bank          []RawBankAccount       `json:"bank"`
	NQ            []RawBrokerageAccount  `json:"nq"`
	Retirement    []RawRetirementAccount `json:"retirement"`
	LifeInsurance []RawLifeInsurance     `json:"life_insurance"`
	Business      []RawBusinessInterest  `json:"business"`
	Digital       []RawDigitalAsset      `json:"digital"`
	Other         []RawOtherAsset        `json:"other"`
}

// Records flattens the document in form order
func (r RawAssets) Records() []RawAsset {
	out := make([]RawAsset, 0, r.Len())
	for _, a := range r.RealEstate {
		out = append(out, a)
	}
	for _, a := range r.Bank {
		out = append(out, a)
	}
	for _, a := range r.NQ {
		out = append(out, a)
	}
	for _, a := range r.Retirement {
		out = append(out, a)
	}
	for _, a := range r.LifeInsurance {
		out = append(out, a)
	}
	for _, a := range r.Business {
		out = append(out, a)
	}
	for _, a := range r.Digital {
		out = append(out, a)
	}
	for _, a := range r.Other {
		out = append(out, a)
	}
	return out
}

// Len returns the number of records across all forms
func (r RawAssets) Len() int {
	return len(r.RealEstate) + len(r.Bank) + len(r.NQ) + len(r.Retirement) +
		len(r.LifeInsurance) + len(r.Business) + len(r.Digital) + len(r.Other)
}

func joinName(primary, secondary, fallback string) string {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)
	switch {
	case primary != "" && secondary != "":
		return primary + " - " + secondary
	case primary != "":
		return primary
	case secondary != "":
		return secondary
	}
	return fallback
}
