package equipment

import "fmt"

// catalog lists every equipment type, its installed unit count and its
// wear class. The class is assigned here, in one place, rather than
// inferred from the type name.
var catalog = []struct {
	name  string
	count int
	class Class
}{
	{"primary_crusher", 2, ClassCrusher},
	{"secondary_crusher", 3, ClassCrusher},
	{"tertiary_crusher", 2, ClassCrusher},
	{"vibrating_screen", 5, ClassScreen},
	{"trommel_screen", 2, ClassScreen},
	{"dewatering_screen", 3, ClassScreen},
	{"spiral_concentrator", 8, ClassSpiralJig},
	{"jig", 4, ClassSpiralJig},
	{"shaking_table", 3, ClassOther},
	{"magnetic_separator_lims", 4, ClassMagnetic},
	{"magnetic_separator_hims", 3, ClassMagnetic},
	{"flotation_cell_rougher", 6, ClassFlotation},
	{"flotation_cell_cleaner", 4, ClassFlotation},
	{"flotation_cell_scavenger", 3, ClassFlotation},
	{"dms_cyclone", 3, ClassCyclone},
	{"hydrocyclone", 5, ClassCyclone},
	{"thickener", 2, ClassThickenerFilter},
	{"vacuum_filter", 3, ClassThickenerFilter},
	{"filter_press", 2, ClassThickenerFilter},
	{"slurry_pump", 12, ClassPump},
	{"sump_pump", 6, ClassPump},
	{"transfer_pump", 8, ClassPump},
	{"conveyor_belt", 15, ClassConveyor},
	{"apron_feeder", 4, ClassOther},
	{"vibrating_feeder", 3, ClassOther},
	{"agitator", 5, ClassOther},
	{"air_blower", 4, ClassOther},
	{"reagent_dosing_pump", 6, ClassPump},
}

// designLife returns the class design life in operating hours. Crushers
// and pumps wear fastest, conveyors and screens next, everything else
// is rated for eight years.
func designLife(c Class) float64 {
	const hoursPerYear = 8760

	switch c {
	case ClassCrusher, ClassPump:
		return 5 * hoursPerYear
	case ClassConveyor, ClassScreen:
		return 7 * hoursPerYear
	default:
		return 8 * hoursPerYear
	}
}

// degradation holds the class condition baselines and the per-point
// slopes applied to (100 - health).
type degradation struct {
	vibBase, vibSlope, vibNoise    float64
	tempBase, tempSlope, tempNoise float64
	pfBase, pfSlope                float64
	wearSlope                      float64
}

var classDegradation = map[Class]degradation{
	ClassCrusher:         {2.5, 0.12, 0.6, 65, 0.35, 6, 0.85, 0.002, 0.8},
	ClassPump:            {1.8, 0.09, 0.4, 75, 0.45, 9, 0.90, 0.0015, 0.6},
	ClassScreen:          {3.5, 0.15, 0.7, 50, 0.25, 4, 0.87, 0.0018, 0.9},
	ClassFlotation:       {1.2, 0.06, 0.25, 40, 0.15, 3, 0.89, 0.001, 0.4},
	ClassMagnetic:        {1.5, 0.07, 0.3, 55, 0.28, 5, 0.88, 0.0012, 0.5},
	ClassSpiralJig:       {1.0, 0.05, 0.2, 35, 0.12, 2, 0.86, 0.0008, 0.7},
	ClassConveyor:        {2.0, 0.10, 0.45, 48, 0.22, 4, 0.84, 0.0016, 0.85},
	ClassThickenerFilter: {0.8, 0.04, 0.15, 38, 0.10, 2, 0.91, 0.0009, 0.3},
	ClassCyclone:         {1.3, 0.06, 0.25, 42, 0.18, 3, 0.87, 0.0010, 0.65},
	ClassOther:           {1.4, 0.07, 0.3, 52, 0.24, 4, 0.88, 0.0011, 0.55},
}

var typeClass = func() map[string]Class {
	m := make(map[string]Class, len(catalog))
	for _, spec := range catalog {
		m[spec.name] = spec.class
	}

	return m
}()

// ClassOf reports the wear class of an equipment type name.
func ClassOf(name string) (Class, bool) {
	c, ok := typeClass[name]

	return c, ok
}

// Fleet enumerates every installed unit in catalog order. Unit IDs are
// the type name with a 1-based two-digit suffix.
func Fleet() []Unit {
	var units []Unit
	for _, spec := range catalog {
		for i := 1; i <= spec.count; i++ {
			units = append(units, Unit{
				ID:    fmt.Sprintf("%s_%02d", spec.name, i),
				Type:  spec.name,
				Class: spec.class,
			})
		}
	}

	return units
}

// UnitsOf returns the fleet units belonging to the given wear class.
func UnitsOf(c Class) []Unit {
	var units []Unit
	for _, u := range Fleet() {
		if u.Class == c {
			units = append(units, u)
		}
	}

	return units
}
