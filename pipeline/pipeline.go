package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/beneficiation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/crushing"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/dataset"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/energy"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/equipment"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/orefeed"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/separation"
	"github.com/Darlene-13/Intelligent-Manganese-Processing-Plant-Optimization/simrand"
)

// Output table names, used as CSV file name suffixes and Dataset keys.
const (
	TableOreFeed    = "ore_feed"
	TableBlend      = "blended_ore_feed"
	TableCrushing   = "crushing_circuit"
	TableSeparation = "separation_circuit"
	TableEquipment  = "equipment_health"
	TableEnergy     = "energy_consumption"
	TableFlotation  = "flotation_circuit"
	TableDMS        = "dms_circuit"
	TableJigging    = "jigging_circuit"
	TableDewatering = "dewatering_circuit"
)

// Dataset is the complete output of one pipeline run, keyed by table
// name.
type Dataset map[string]dataset.Table

// WriteCSV writes one CSV file per table into dir, named
// "<plant>_<table>.csv". Returns the written paths.
func (d Dataset) WriteCSV(dir, plant string) ([]string, error) {
	return dataset.Write(dir, plant, d)
}

// Run executes every generator in dependency order from a single
// random stream seeded by cfg.Seed. Any stage error aborts the run.
// A nil logger disables logging.
func Run(cfg Config, log *zap.Logger) (Dataset, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg = cfg.normalized()
	rng := simrand.New(cfg.Seed)

	log.Info("pipeline run starting",
		zap.Int64("seed", cfg.Seed),
		zap.String("plant", cfg.Plant),
		zap.Bool("link_equipment", cfg.LinkEquipment))

	ore, err := orefeed.Generate(rng, cfg.Samples.OreFeed)
	if err != nil {
		return nil, fmt.Errorf("pipeline: ore feed: %w", err)
	}
	log.Info("ore feed generated", zap.Int("rows", len(ore)))

	blend, err := orefeed.Blend(rng, ore,
		orefeed.WithHighGradeCutoff(cfg.HighGradeCutoff),
		orefeed.WithBlendRatio(cfg.BlendRatio))
	if err != nil {
		return nil, fmt.Errorf("pipeline: blend: %w", err)
	}
	log.Info("ore blended", zap.Int("rows", len(blend)))

	crush, err := crushing.Generate(rng, blend, cfg.Samples.Crushing)
	if err != nil {
		return nil, fmt.Errorf("pipeline: crushing: %w", err)
	}
	log.Info("crushing circuit generated", zap.Int("rows", len(crush)))

	sep, err := separation.Generate(rng, blend, cfg.Samples.Separation)
	if err != nil {
		return nil, fmt.Errorf("pipeline: separation: %w", err)
	}
	log.Info("separation circuit generated", zap.Int("rows", len(sep)))

	health, err := equipment.Generate(rng, cfg.Samples.Equipment)
	if err != nil {
		return nil, fmt.Errorf("pipeline: equipment health: %w", err)
	}
	log.Info("equipment health generated", zap.Int("rows", len(health)))

	power, err := energy.Generate(rng, crush, sep, cfg.Samples.Energy)
	if err != nil {
		return nil, fmt.Errorf("pipeline: energy: %w", err)
	}
	log.Info("energy consumption generated", zap.Int("rows", len(power)))

	var link []beneficiation.Option
	if cfg.LinkEquipment {
		link = append(link, beneficiation.WithEquipmentHealth(health))
	}

	flot, err := beneficiation.Flotation(rng, sep, cfg.Samples.Flotation, link...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: flotation: %w", err)
	}
	log.Info("flotation circuit generated", zap.Int("rows", len(flot)))

	dms, err := beneficiation.DMS(rng, ore, cfg.Samples.DMS, link...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: dms: %w", err)
	}
	log.Info("dms circuit generated", zap.Int("rows", len(dms)))

	jig, err := beneficiation.Jigging(rng, ore, cfg.Samples.Jigging, link...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: jigging: %w", err)
	}
	log.Info("jigging circuit generated", zap.Int("rows", len(jig)))

	dewater, err := beneficiation.Dewatering(rng, flot, dms, cfg.Samples.Dewatering, link...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: dewatering: %w", err)
	}
	log.Info("dewatering circuit generated", zap.Int("rows", len(dewater)))

	return Dataset{
		TableOreFeed:    ore,
		TableBlend:      blend,
		TableCrushing:   crush,
		TableSeparation: sep,
		TableEquipment:  health,
		TableEnergy:     power,
		TableFlotation:  flot,
		TableDMS:        dms,
		TableJigging:    jig,
		TableDewatering: dewater,
	}, nil
}
