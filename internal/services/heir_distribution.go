package services

import "github.com/epeers/estateplan/internal/models"

// BuildHeirDistributions groups every (asset, inheritor) pair in the
// scenario by inheritor name. Heirs appear in the order they are first met
// walking the buckets. An asset reaching the same heir through more than one
// slice is reported once with the slices summed.
func BuildHeirDistributions(scenario *models.ScenarioContainer, assets []models.Asset) []models.HeirDistribution {
	originals := make(map[string]models.Asset, len(assets))
	for _, a := range assets {
		if _, ok := originals[a.Key()]; !ok {
			originals[a.Key()] = a
		}
	}

	dists := []models.HeirDistribution{}
	heirIdx := map[string]int{}
	assetIdx := map[string]map[string]int{}

	for _, bucket := range scenario.Buckets {
		for _, sa := range bucket.Assets {
			key := sa.Key()
			original, known := originals[key]
			if !known {
				original = sa.Asset
			}

			for _, inh := range sa.Inheritors {
				hi, ok := heirIdx[inh.Name]
				if !ok {
					hi = len(dists)
					heirIdx[inh.Name] = hi
					assetIdx[inh.Name] = map[string]int{}
					dists = append(dists, models.HeirDistribution{Name: inh.Name, Assets: []models.HeirAsset{}})
				}
				d := &dists[hi]
				d.TotalValue += inh.Value

				if ai, ok := assetIdx[inh.Name][key]; ok {
					d.Assets[ai].Value += inh.Value
					d.Assets[ai].Percentage = percentOf(d.Assets[ai].Value, original.ApproximateValue)
					continue
				}
				assetIdx[inh.Name][key] = len(d.Assets)
				d.Assets = append(d.Assets, models.HeirAsset{
					AssetID:       sa.ID,
					AssetIDName:   sa.IDName,
					AssetName:     sa.Name,
					Category:      sa.Category,
					Mechanism:     sa.TransferMechanism,
					Percentage:    percentOf(inh.Value, original.ApproximateValue),
					Value:         inh.Value,
					OriginalOwner: original.OwnedBy,
				})
			}
		}
	}

	return dists
}

func percentOf(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
