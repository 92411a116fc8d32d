package molecule

import "github.com/cx-luo/go-smiles/smiles"

func symbolOf(z int) string {
	return smiles.ElementSymbol(z)
}

// atomicWeights holds standard atomic weights, indexed by atomic number,
// for the elements a SMILES molecule plausibly contains. Unlisted elements
// contribute zero to MolecularWeight rather than panicking, since a gross
// formula or Lipinski profile over an exotic bracket atom should degrade
// gracefully instead of failing outright.
var atomicWeights = map[int]float64{
	1: 1.008, 2: 4.003, 3: 6.941, 4: 9.012, 5: 10.81, 6: 12.01, 7: 14.01, 8: 16.00, 9: 19.00, 10: 20.18,
	11: 22.99, 12: 24.31, 13: 26.98, 14: 28.09, 15: 30.97, 16: 32.07, 17: 35.45, 18: 39.95, 19: 39.10, 20: 40.08,
	21: 44.96, 22: 47.87, 23: 50.94, 24: 52.00, 25: 54.94, 26: 55.85, 27: 58.93, 28: 58.69, 29: 63.55, 30: 65.38,
	31: 69.72, 32: 72.63, 33: 74.92, 34: 78.96, 35: 79.90, 36: 83.80, 37: 85.47, 38: 87.62, 39: 88.91, 40: 91.22,
	41: 92.91, 42: 95.95, 43: 98.00, 44: 101.1, 45: 102.9, 46: 106.4, 47: 107.9, 48: 112.4, 49: 114.8, 50: 118.7,
	51: 121.8, 52: 127.6, 53: 126.9, 54: 131.3, 55: 132.9, 56: 137.3,
}

func atomicWeight(z, isotope int) float64 {
	if isotope != smiles.Unset && isotope > 0 {
		return float64(isotope)
	}
	return atomicWeights[z]
}
