package batch

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"dovela/internal/errors"
	"dovela/internal/params"
)

// Spreadsheet column order for imported sweeps. The first row is a
// header and is skipped.
// side, thickness, joint_opening, load, grade, impact, amplification,
// cycles, exposure, temp_service, temp_max, temp_min, humidity, wind
const importColumns = 14

// ImportXLSX reads sweep items from the first sheet of an xlsx
// workbook. Rows missing the four required numeric columns are skipped.
// All values are metric.
func ImportXLSX(r io.Reader) (SweepInput, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return SweepInput{}, errors.Wrap(errors.TypeInput, "cannot open workbook", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return SweepInput{}, errors.Input("workbook has no data rows")
	}

	var in SweepInput
	for i := 1; i < len(rows); i++ {
		req, err := parseRow(rows[i])
		if err != nil {
			continue
		}
		in.Items = append(in.Items, req)
	}
	if len(in.Items) == 0 {
		return SweepInput{}, errors.Input("no parseable rows in workbook")
	}
	return in, nil
}

func parseRow(row []string) (params.Request, error) {
	if len(row) < 4 {
		return params.Request{}, fmt.Errorf("bad row")
	}
	side, err := toFloat(row[0])
	if err != nil {
		return params.Request{}, err
	}
	thickness, err := toFloat(row[1])
	if err != nil {
		return params.Request{}, err
	}
	joint, err := toFloat(row[2])
	if err != nil {
		return params.Request{}, err
	}
	load, err := toFloat(row[3])
	if err != nil {
		return params.Request{}, err
	}

	req := params.Request{
		Geometry: params.GeometryParams{SideLength: side, Thickness: thickness, JointOpening: joint},
		Material: params.MaterialParams{Grade: "A36"},
		Load:     params.LoadCase{Magnitude: load},
		Environment: params.Environment{
			ServiceTemperature: 20, TemperatureMax: 40, TemperatureMin: -10,
			HumidityAvg: 60,
		},
	}
	if len(row) > 4 && row[4] != "" {
		req.Material.Grade = row[4]
	}
	if len(row) > 5 && row[5] != "" {
		req.Load.ImpactFactor, _ = toFloat(row[5])
	}
	if len(row) > 6 && row[6] != "" {
		req.Load.DynamicAmplification, _ = toFloat(row[6])
	}
	if len(row) > 7 && row[7] != "" {
		req.Load.FatigueCycles, _ = toFloat(row[7])
	}
	if len(row) > 8 && row[8] != "" {
		req.Environment.Exposure = params.Exposure(row[8])
	}
	if len(row) > 9 && row[9] != "" {
		req.Environment.ServiceTemperature, _ = toFloat(row[9])
	}
	if len(row) > 10 && row[10] != "" {
		req.Environment.TemperatureMax, _ = toFloat(row[10])
	}
	if len(row) > 11 && row[11] != "" {
		req.Environment.TemperatureMin, _ = toFloat(row[11])
	}
	if len(row) > 12 && row[12] != "" {
		req.Environment.HumidityAvg, _ = toFloat(row[12])
	}
	if len(row) > 13 && row[13] != "" {
		req.Environment.WindSpeedMax, _ = toFloat(row[13])
	}
	return req, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ExportXLSX writes sweep outcomes as a workbook: one row per item with
// the governing numbers, for filtering and charting in a spreadsheet.
func ExportXLSX(w io.Writer, in SweepInput, res SweepResult) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"item", "side_mm", "thickness_mm", "joint_mm", "load_n",
		"safety_factor", "max_stress_mpa", "max_displacement_mm",
		"meets_target", "warnings", "error",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for _, o := range res.Outcomes {
		req := in.Items[o.Index]
		row := []interface{}{
			o.Index + 1,
			req.Geometry.SideLength, req.Geometry.Thickness, req.Geometry.JointOpening,
			req.Load.Magnitude,
		}
		if o.Result != nil {
			row = append(row,
				o.Result.SafetyFactor, o.Result.MaxStress, o.Result.MaxDisplacement,
				o.Result.MeetsTarget)
		} else {
			row = append(row, "", "", "", "")
		}
		row = append(row, o.Validation.Warnings(), o.Error)

		cell, err := excelize.CoordinatesToCellName(1, o.Index+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
