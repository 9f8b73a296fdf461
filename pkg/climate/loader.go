package climate

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"agrisense/entities"
)

// IrrigationSheet is the worksheet read from the irrigation workbook.
const IrrigationSheet = "Irrigation"

type tablesFile struct {
	Seasons    map[entities.Season]seasonRow                         `yaml:"seasons"`
	Profiles   []entities.CropProfile                                `yaml:"profiles"`
	Irrigation map[entities.Season][]entities.IrrigationZoneSchedule `yaml:"irrigation"`
}

// LoadFromFiles starts from the built-in tables and overlays the YAML tables
// file and the irrigation workbook. Empty or missing paths are skipped.
func LoadFromFiles(tablesYAML, irrigationXLSX string) (RulesEngine, error) {
	r := defaultRules()
	if tablesYAML != "" {
		if err := r.loadYAML(tablesYAML); err != nil {
			return nil, fmt.Errorf("season tables %s: %w", tablesYAML, err)
		}
	}
	if irrigationXLSX != "" {
		if err := r.loadIrrigationXLSX(irrigationXLSX); err != nil {
			return nil, fmt.Errorf("irrigation workbook %s: %w", irrigationXLSX, err)
		}
	}
	return r, nil
}

func (r *rules) loadYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var tf tablesFile
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return err
	}
	for s, row := range tf.Seasons {
		if !s.Valid() {
			return fmt.Errorf("unknown season %q", s)
		}
		r.seasons[s] = row
	}
	for _, p := range tf.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("crop profile without a name")
		}
		r.upsertProfile(p)
	}
	for s, sched := range tf.Irrigation {
		if !s.Valid() {
			return fmt.Errorf("unknown season %q", s)
		}
		r.irrigation[s] = sched
	}
	return nil
}

func (r *rules) upsertProfile(p entities.CropProfile) {
	for i := range r.profiles {
		if r.profiles[i].Name == p.Name {
			r.profiles[i] = p
			return
		}
	}
	r.profiles = append(r.profiles, p)
}

func (r *rules) loadIrrigationXLSX(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	rows, err := x.GetRows(IrrigationSheet)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	norm := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, "\uFEFF")
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, "-", "")
		s = strings.ReplaceAll(s, "_", "")
		return s
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cSeason := findAny("Season")
	cZone := findAny("Zone")
	cCrop := findAny("CropType", "crop")
	cStage := findAny("GrowthStage", "stage")
	cReason := findAny("Reason", "RecommendationReason", "notes")
	cMM := findAny("NextIrrigationMM", "next_irrigation_mm", "mm")
	if cSeason == -1 || cZone == -1 || cMM == -1 {
		return fmt.Errorf("sheet %s missing required columns, found %v, need at least Season, Zone, NextIrrigationMM", IrrigationSheet, rows[0])
	}

	loaded := map[entities.Season][]entities.IrrigationZoneSchedule{}
	for n, rec := range rows[1:] {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		if get(cSeason) == "" && get(cZone) == "" {
			continue
		}
		season, ok := entities.ParseSeason(get(cSeason))
		if !ok || get(cSeason) == "" {
			return fmt.Errorf("row %d: unknown season %q", n+2, get(cSeason))
		}
		mm, err := strconv.ParseFloat(get(cMM), 64)
		if err != nil {
			return fmt.Errorf("row %d: bad irrigation amount %q", n+2, get(cMM))
		}
		loaded[season] = append(loaded[season], entities.IrrigationZoneSchedule{
			Zone:             get(cZone),
			CropType:         get(cCrop),
			GrowthStage:      get(cStage),
			Reason:           get(cReason),
			NextIrrigationMM: mm,
		})
	}
	for s, sched := range loaded {
		r.irrigation[s] = sched
	}
	return nil
}
