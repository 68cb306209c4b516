package services

import (
	"fmt"

	"github.com/epeers/estateplan/internal/models"
	log "github.com/sirupsen/logrus"
)

// decedent is the spouse whose death a routing pass models
type decedent int

const (
	decedentClient decedent = iota
	decedentSpouse
)

func (d decedent) String() string {
	if d == decedentSpouse {
		return "spouse"
	}
	return "client"
}

// holding is an asset's ownership seen from the decedent's side
type holding int

const (
	holdUnknown          holding = iota
	holdTrust                    // titled to a trust
	holdLLC                      // titled to an LLC
	holdDecedent                 // decedent alone
	holdSurvivor                 // surviving spouse alone
	holdJointSpouse              // decedent and surviving spouse
	holdJointSpouseOther         // decedent, surviving spouse and a third party
	holdDecedentOther            // decedent and a third party
	holdSurvivorOther            // surviving spouse and a third party
)

// relate maps a canonical owner to a holding for the given decedent
func relate(owner models.OwnedBy, d decedent) holding {
	switch owner {
	case models.OwnedByTrust:
		return holdTrust
	case models.OwnedByLLC:
		return holdLLC
	case models.OwnedByClientAndSpouse:
		return holdJointSpouse
	case models.OwnedByClientSpouseAndOther:
		return holdJointSpouseOther
	case models.OwnedByClient:
		if d == decedentClient {
			return holdDecedent
		}
		return holdSurvivor
	case models.OwnedBySpouse:
		if d == decedentSpouse {
			return holdDecedent
		}
		return holdSurvivor
	case models.OwnedByClientAndOther:
		if d == decedentClient {
			return holdDecedentOther
		}
		return holdSurvivorOther
	case models.OwnedBySpouseAndOther:
		if d == decedentSpouse {
			return holdDecedentOther
		}
		return holdSurvivorOther
	}
	return holdUnknown
}

// survivorOwner is the owner value for an asset the survivor holds alone
func survivorOwner(d decedent) models.OwnedBy {
	if d == decedentClient {
		return models.OwnedBySpouse
	}
	return models.OwnedByClient
}

// survivorOtherOwner is the owner value for an asset the survivor holds with a third party
func survivorOtherOwner(d decedent) models.OwnedBy {
	if d == decedentClient {
		return models.OwnedBySpouseAndOther
	}
	return models.OwnedByClientAndOther
}

// routeForm is the second half of a rule key. Life estate and lady bird
// deeds take precedence over the ownership form.
type routeForm string

const formAny routeForm = "*"

func formOf(a models.Asset) routeForm {
	switch a.RealEstateMode {
	case models.RealEstateLifeEstate, models.RealEstateLadyBird:
		return routeForm(a.RealEstateMode)
	}
	return routeForm(a.OwnershipForm)
}

type ruleKey struct {
	hold holding
	form routeForm
}

// bucketSet names the buckets a single routing pass writes to
type bucketSet struct {
	probate       models.BucketKey
	nonProbate    models.BucketKey
	jointSurvivor models.BucketKey
	jointOther    models.BucketKey
	survivorSole  models.BucketKey
}

var decedentBuckets = map[decedent]bucketSet{
	decedentClient: {
		probate:       models.BucketClientProbate,
		nonProbate:    models.BucketClientNonProbate,
		jointSurvivor: models.BucketClientJointSpouse,
		jointOther:    models.BucketClientJointOther,
		survivorSole:  models.BucketSpouseSole,
	},
	decedentSpouse: {
		probate:       models.BucketSpouseProbate,
		nonProbate:    models.BucketSpouseNonProbate,
		jointSurvivor: models.BucketSpouseJointClient,
		jointOther:    models.BucketSpouseJointOther,
		survivorSole:  models.BucketClientSole,
	},
}

// routeContext is everything a rule needs to place one asset
type routeContext struct {
	asset        models.Asset
	decedent     decedent
	buckets      bucketSet
	survivorName string
}

// placement is one classified slice of an asset. carry is set when the
// slice stays with the surviving spouse; it is the asset as the survivor
// holds it, for routing at the survivor's own death.
type placement struct {
	bucket models.BucketKey
	entry  models.ScenarioAsset
	carry  *models.Asset
}

type routeFunc func(rc routeContext) []placement

// routingTable is the transfer rule table. Lookups try the exact form first
// and then formAny.
var routingTable = map[ruleKey]routeFunc{
	{holdTrust, formAny}:                                      routeTrust,
	{holdLLC, formAny}:                                        routeLLC,
	{holdSurvivor, formAny}:                                   routeSurvivorSole,
	{holdDecedent, routeForm(models.OwnershipSole)}:           routeDecedentOwned,
	{holdDecedent, routeForm(models.OwnershipTIC)}:            routeDecedentOwned,
	{holdDecedent, routeForm(models.RealEstateLifeEstate)}:    routeRemainder,
	{holdDecedent, routeForm(models.RealEstateLadyBird)}:      routeRemainder,
	{holdJointSpouse, routeForm(models.OwnershipTBE)}:         routeSpousalSurvivorship,
	{holdJointSpouse, routeForm(models.OwnershipJTWROS)}:      routeSpousalSurvivorship,
	{holdJointSpouse, routeForm(models.OwnershipTIC)}:         routeSpousalTIC,
	{holdJointSpouse, routeForm(models.RealEstateLifeEstate)}: routeSpousalDeed,
	{holdJointSpouse, routeForm(models.RealEstateLadyBird)}:   routeSpousalDeed,
	{holdJointSpouseOther, formAny}:                           routeJointSpouseOther,
	{holdDecedentOther, routeForm(models.OwnershipJTWROS)}:    routeOtherSurvivorship,
	{holdDecedentOther, routeForm(models.OwnershipTIC)}:       routeOtherTIC,
	{holdSurvivorOther, formAny}:                              routeSurvivorOther,
}

func lookupRule(h holding, f routeForm) (routeFunc, bool) {
	if fn, ok := routingTable[ruleKey{h, f}]; ok {
		return fn, true
	}
	fn, ok := routingTable[ruleKey{h, formAny}]
	return fn, ok
}

// routeAsset classifies one asset for a decedent. Combinations missing from
// the table are placed in probate with an Unknown inheritor and reported
// through the returned diagnostic.
func routeAsset(a models.Asset, d decedent, survivorName string) ([]placement, *models.Warning) {
	rc := routeContext{
		asset:        a,
		decedent:     d,
		buckets:      decedentBuckets[d],
		survivorName: survivorName,
	}

	if fn, ok := lookupRule(relate(a.OwnedBy, d), formOf(a)); ok {
		return fn(rc), nil
	}

	log.Warnf("Unhandled asset routing: %s (%s) owner=%s form=%s mode=%s decedent=%s",
		a.Name, a.Key(), a.OwnedBy, a.OwnershipForm, a.RealEstateMode, d)
	diag := &models.Warning{
		Code: models.WarnUnhandledRouting,
		Message: fmt.Sprintf("No transfer rule for %q (%s): owned by %s as %s with the %s as decedent; classified as Probate with an Unknown inheritor",
			a.Name, a.Key(), a.OwnedBy, a.OwnershipForm, d),
	}
	value := a.ApproximateValue * ownedFraction(a)
	return []placement{{
		bucket: rc.buckets.probate,
		entry:  newEntry(a, value, models.MechanismProbate, sole(models.InheritorUnknown, models.RelationshipUnknown)),
	}}, diag
}

// ownedFraction is the part of the asset the named owners hold. Only
// tenancy in common is fractional; every other form conveys the whole.
func ownedFraction(a models.Asset) float64 {
	if a.OwnershipForm == models.OwnershipTIC {
		return a.PercentOwned
	}
	return 1.0
}

// share is an inheritor before the dollar value is known
type share struct {
	name         string
	relationship string
	percentage   float64
}

func sole(name, relationship string) []share {
	return []share{{name: name, relationship: relationship, percentage: 100}}
}

// newEntry snapshots the asset and prices each inheritor as
// value * percentage / 100
func newEntry(a models.Asset, value float64, mechanism models.TransferMechanism, shares []share) models.ScenarioAsset {
	snapshot := a
	snapshot.PrimaryBeneficiaries = append([]models.BeneficiaryShare(nil), a.PrimaryBeneficiaries...)
	snapshot.ContingentBeneficiaries = append([]models.BeneficiaryShare(nil), a.ContingentBeneficiaries...)

	inheritors := make([]models.Inheritor, 0, len(shares))
	for _, s := range shares {
		inheritors = append(inheritors, models.Inheritor{
			Name:         s.name,
			Relationship: s.relationship,
			Percentage:   s.percentage,
			Value:        value * s.percentage / 100,
		})
	}
	return models.ScenarioAsset{
		Asset:             snapshot,
		CalculatedValue:   value,
		TransferMechanism: mechanism,
		Inheritors:        inheritors,
	}
}

// designatedShares turns the primary beneficiary list into inheritors. An
// empty list yields a single unnamed designee and a list with no
// percentages is split equally. Lists that do not total 100 are used as
// given.
func designatedShares(a models.Asset) []share {
	if len(a.PrimaryBeneficiaries) == 0 {
		return sole(models.InheritorDesignated, models.RelationshipBeneficiary)
	}

	anyPct := false
	for _, b := range a.PrimaryBeneficiaries {
		if b.Percentage != 0 {
			anyPct = true
			break
		}
	}

	equal := 100 / float64(len(a.PrimaryBeneficiaries))
	shares := make([]share, 0, len(a.PrimaryBeneficiaries))
	for _, b := range a.PrimaryBeneficiaries {
		name := b.Name
		if name == "" {
			name = models.InheritorDesignated
		}
		pct := b.Percentage
		if !anyPct {
			pct = equal
		}
		shares = append(shares, share{name: name, relationship: models.RelationshipBeneficiary, percentage: pct})
	}
	return shares
}

// decedentShare places the decedent's own interest: by beneficiary
// designation when one exists, otherwise through probate
func decedentShare(rc routeContext, value float64) placement {
	if rc.asset.HasBene == models.BeneYes {
		return placement{
			bucket: rc.buckets.nonProbate,
			entry:  newEntry(rc.asset, value, models.MechanismBeneficiaryDesignation, designatedShares(rc.asset)),
		}
	}
	return placement{
		bucket: rc.buckets.probate,
		entry:  newEntry(rc.asset, value, models.MechanismProbate, sole(models.InheritorEstateHeirs, models.RelationshipHeirs)),
	}
}

// survivorHolds rewrites an asset as held by the survivor alone
func survivorHolds(a models.Asset, d decedent, value float64) *models.Asset {
	held := a
	held.OwnedBy = survivorOwner(d)
	held.OwnershipForm = models.OwnershipSole
	held.ApproximateValue = value
	held.PercentOwned = 1.0
	return &held
}

func survivorOther(name string) string {
	return name + " & Other"
}

func routeTrust(rc routeContext) []placement {
	return []placement{{
		bucket: models.BucketTrust,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue, models.MechanismTrust, sole(models.InheritorTrustBeneficiaries, models.RelationshipTrust)),
	}}
}

func routeLLC(rc routeContext) []placement {
	return []placement{{
		bucket: models.BucketLLC,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue, models.MechanismLLC, sole(models.InheritorLLCMembers, models.RelationshipLLC)),
	}}
}

func routeSurvivorSole(rc routeContext) []placement {
	held := rc.asset
	return []placement{{
		bucket: rc.buckets.survivorSole,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue*ownedFraction(rc.asset), models.MechanismUnaffected, sole(rc.survivorName, models.RelationshipSpouse)),
		carry:  &held,
	}}
}

// routeDecedentOwned covers sole and tenancy-in-common title held by the
// decedent alone. The co-tenants' remainder is not part of this estate.
func routeDecedentOwned(rc routeContext) []placement {
	return []placement{decedentShare(rc, rc.asset.ApproximateValue*ownedFraction(rc.asset))}
}

func routeRemainder(rc routeContext) []placement {
	mechanism := models.MechanismLifeEstate
	if rc.asset.RealEstateMode == models.RealEstateLadyBird {
		mechanism = models.MechanismLadyBird
	}
	return []placement{{
		bucket: rc.buckets.nonProbate,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue, mechanism, sole(models.InheritorRemainderman, models.RelationshipRemainder)),
	}}
}

func routeSpousalSurvivorship(rc routeContext) []placement {
	value := rc.asset.ApproximateValue
	return []placement{{
		bucket: rc.buckets.jointSurvivor,
		entry:  newEntry(rc.asset, value, models.MechanismSurvivorship, sole(rc.survivorName, models.RelationshipSpouse)),
		carry:  survivorHolds(rc.asset, rc.decedent, value),
	}}
}

// routeSpousalTIC splits spousal tenancy in common. percentOwned is the
// client's interest, so the spouse's interest is its complement.
func routeSpousalTIC(rc routeContext) []placement {
	p := rc.asset.PercentOwned
	if rc.decedent == decedentSpouse {
		p = 1 - p
	}
	decedentValue := rc.asset.ApproximateValue * p
	survivorValue := rc.asset.ApproximateValue - decedentValue

	return []placement{
		decedentShare(rc, decedentValue),
		{
			bucket: rc.buckets.survivorSole,
			entry:  newEntry(rc.asset, survivorValue, models.MechanismUnaffected, sole(rc.survivorName, models.RelationshipSpouse)),
			carry:  survivorHolds(rc.asset, rc.decedent, survivorValue),
		},
	}
}

func routeSpousalDeed(rc routeContext) []placement {
	mechanism := models.MechanismLifeEstate
	if rc.asset.RealEstateMode == models.RealEstateLadyBird {
		mechanism = models.MechanismLadyBird
	}
	value := rc.asset.ApproximateValue
	return []placement{{
		bucket: rc.buckets.jointSurvivor,
		entry:  newEntry(rc.asset, value, mechanism, sole(rc.survivorName, models.RelationshipSpouse)),
		carry:  survivorHolds(rc.asset, rc.decedent, value),
	}}
}

func routeJointSpouseOther(rc routeContext) []placement {
	value := rc.asset.ApproximateValue
	held := *survivorHolds(rc.asset, rc.decedent, value)
	held.OwnedBy = survivorOtherOwner(rc.decedent)
	held.OwnershipForm = models.OwnershipJTWROS
	held.RealEstateMode = ""
	if rc.asset.Category == models.CategoryRealEstate {
		held.RealEstateMode = models.RealEstateFeeSimple
	}
	return []placement{{
		bucket: rc.buckets.jointSurvivor,
		entry:  newEntry(rc.asset, value, models.MechanismSurvivorship, sole(survivorOther(rc.survivorName), models.RelationshipJointOwner)),
		carry:  &held,
	}}
}

func routeOtherSurvivorship(rc routeContext) []placement {
	return []placement{{
		bucket: rc.buckets.jointOther,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue, models.MechanismSurvivorship, sole(models.InheritorOtherJointOwner, models.RelationshipJointOwner)),
	}}
}

func routeOtherTIC(rc routeContext) []placement {
	decedentValue := rc.asset.ApproximateValue * rc.asset.PercentOwned
	otherValue := rc.asset.ApproximateValue - decedentValue
	return []placement{
		decedentShare(rc, decedentValue),
		{
			bucket: rc.buckets.jointOther,
			entry:  newEntry(rc.asset, otherValue, models.MechanismUnaffected, sole(models.InheritorOtherJointOwner, models.RelationshipJointOwner)),
		},
	}
}

func routeSurvivorOther(rc routeContext) []placement {
	held := rc.asset
	return []placement{{
		bucket: rc.buckets.survivorSole,
		entry:  newEntry(rc.asset, rc.asset.ApproximateValue, models.MechanismUnaffected, sole(survivorOther(rc.survivorName), models.RelationshipJointOwner)),
		carry:  &held,
	}}
}
