package dashboard

import (
	"strconv"
	"strings"
	"time"

	"farmdash/entities"
	"farmdash/pkg/schema"
)

// CropKind describes the crops screen.
func CropKind() *Kind[entities.Crop] {
	return &Kind[entities.Crop]{
		Singular: "Crop",
		Plural:   "Crops",
		Fields: []Field{
			{Name: "name", Label: "Name", Type: FieldText},
			{Name: "variety", Label: "Variety", Type: FieldText},
			{Name: "plantingDate", Label: "Planting Date", Type: FieldDate},
			{Name: "harvestDate", Label: "Harvest Date", Type: FieldDate},
			{Name: "status", Label: "Status", Type: FieldSelect, Options: statusOptions},
		},
		Columns: []Column[entities.Crop]{
			{Header: "Name", Cell: func(c entities.Crop) string { return c.Name }},
			{Header: "Variety", Cell: func(c entities.Crop) string { return c.Variety }},
			{Header: "Planting Date", Cell: func(c entities.Crop) string { return entities.FormatDateForInput(c.PlantingDate) }},
			{Header: "Harvest Date", Cell: func(c entities.Crop) string { return entities.FormatDateForInput(c.HarvestDate) }},
			{Header: "Status", Cell: func(c entities.Crop) string { return c.Status }},
		},
		Filter: 0,
		ID:     func(c entities.Crop) string { return c.ID },
		Label:  func(c entities.Crop) string { return c.Name },
		Defaults: func(today string) Values {
			return Values{
				"name":         "",
				"variety":      "",
				"plantingDate": today,
				"harvestDate":  today,
				"status":       entities.StatusPlanting,
			}
		},
		Values: func(c entities.Crop) Values {
			return Values{
				"name":         c.Name,
				"variety":      c.Variety,
				"plantingDate": entities.FormatDateForInput(c.PlantingDate),
				"harvestDate":  entities.FormatDateForInput(c.HarvestDate),
				"status":       c.Status,
			}
		},
		Normalize: clampHarvest,
		Payload: func(v Values) (any, schema.FieldErrors) {
			errs := schema.FieldErrors{}
			in := entities.CropInput{
				Name:         strings.TrimSpace(v["name"]),
				Variety:      strings.TrimSpace(v["variety"]),
				PlantingDate: date(v, "plantingDate", errs),
				HarvestDate:  date(v, "harvestDate", errs),
				Status:       v["status"],
			}
			return in, errs
		},
	}
}

// clampHarvest moves a harvest date that precedes the planting date up to
// the planting date.
func clampHarvest(v Values) {
	plant, err := entities.ParseDateFromInput(v["plantingDate"])
	if err != nil {
		return
	}
	harvest, err := entities.ParseDateFromInput(v["harvestDate"])
	if err != nil {
		return
	}
	if harvest.Before(plant) {
		v["harvestDate"] = v["plantingDate"]
	}
}

func statusOptions() []Option {
	out := make([]Option, 0, len(entities.CropStatuses))
	for _, s := range entities.CropStatuses {
		out = append(out, Option{Value: s, Label: s})
	}
	return out
}

// ActivityKind describes the activities screen. The crop select and the Crop
// column read from the shared crops store.
func ActivityKind(crops *Store[entities.Crop]) *Kind[entities.ActivityView] {
	return &Kind[entities.ActivityView]{
		Singular: "Activity",
		Plural:   "Activities",
		Fields: []Field{
			{Name: "description", Label: "Description", Type: FieldText},
			{Name: "date", Label: "Date", Type: FieldDate},
			{Name: "cropId", Label: "Crop", Type: FieldSelect, Options: cropOptions(crops)},
		},
		Columns: []Column[entities.ActivityView]{
			{Header: "Description", Cell: func(a entities.ActivityView) string { return a.Description }},
			{Header: "Date", Cell: func(a entities.ActivityView) string { return entities.FormatDateForInput(a.Date) }},
			{Header: "Crop", Cell: func(a entities.ActivityView) string { return CropName(a.Crop, crops) }},
		},
		Filter: 0,
		ID:     func(a entities.ActivityView) string { return a.ID },
		Label:  func(a entities.ActivityView) string { return a.Description },
		Defaults: func(today string) Values {
			return Values{"description": "", "date": today, "cropId": ""}
		},
		Values: func(a entities.ActivityView) Values {
			in := a.Input()
			return Values{
				"description": in.Description,
				"date":        entities.FormatDateForInput(in.Date),
				"cropId":      in.CropID,
			}
		},
		Payload: func(v Values) (any, schema.FieldErrors) {
			errs := schema.FieldErrors{}
			in := entities.ActivityInput{
				Description: strings.TrimSpace(v["description"]),
				Date:        date(v, "date", errs),
				CropID:      v["cropId"],
			}
			return in, errs
		},
	}
}

// ResourceKind describes the resources screen.
func ResourceKind(crops *Store[entities.Crop]) *Kind[entities.ResourceView] {
	return &Kind[entities.ResourceView]{
		Singular: "Resource",
		Plural:   "Resources",
		Fields: []Field{
			{Name: "name", Label: "Name", Type: FieldText},
			{Name: "quantity", Label: "Quantity", Type: FieldNumber},
			{Name: "type", Label: "Type", Type: FieldText},
			{Name: "cropId", Label: "Crop", Type: FieldSelect, Options: cropOptions(crops)},
		},
		Columns: []Column[entities.ResourceView]{
			{Header: "Name", Cell: func(r entities.ResourceView) string { return r.Name }},
			{Header: "Quantity", Cell: func(r entities.ResourceView) string { return formatQuantity(r.Quantity) }},
			{Header: "Type", Cell: func(r entities.ResourceView) string { return r.Type }},
			{Header: "Crop", Cell: func(r entities.ResourceView) string { return CropName(r.Crop, crops) }},
		},
		Filter: 0,
		ID:     func(r entities.ResourceView) string { return r.ID },
		Label:  func(r entities.ResourceView) string { return r.Name },
		Defaults: func(string) Values {
			return Values{"name": "", "quantity": "", "type": "", "cropId": ""}
		},
		Values: func(r entities.ResourceView) Values {
			in := r.Input()
			return Values{
				"name":     in.Name,
				"quantity": formatQuantity(in.Quantity),
				"type":     in.Type,
				"cropId":   in.CropID,
			}
		},
		Payload: func(v Values) (any, schema.FieldErrors) {
			errs := schema.FieldErrors{}
			in := entities.ResourceInput{
				Name:   strings.TrimSpace(v["name"]),
				Type:   strings.TrimSpace(v["type"]),
				CropID: v["cropId"],
			}
			switch raw := strings.TrimSpace(v["quantity"]); raw {
			case "":
				errs["quantity"] = "Quantity is required"
			default:
				q, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					errs["quantity"] = "Quantity must be a number"
				}
				in.Quantity = q
			}
			return in, errs
		},
	}
}

func cropOptions(crops *Store[entities.Crop]) func() []Option {
	return func() []Option {
		list := crops.List()
		out := make([]Option, 0, len(list))
		for _, c := range list {
			out = append(out, Option{Value: c.ID, Label: c.Name})
		}
		return out
	}
}

// CropName resolves a reference for display: the expanded crop's name, then
// the crops store, then the raw id.
func CropName(ref entities.CropRef, crops *Store[entities.Crop]) string {
	if n := ref.Name(); n != "" {
		return n
	}
	if crops != nil {
		for _, c := range crops.List() {
			if c.ID == ref.ID {
				return c.Name
			}
		}
	}
	return ref.ID
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// date parses a YYYY-MM-DD field. Empty input is left to the schema's
// required rule; malformed input is reported here.
func date(v Values, name string, errs schema.FieldErrors) (t time.Time) {
	raw := strings.TrimSpace(v[name])
	if raw == "" {
		return t
	}
	parsed, err := entities.ParseDateFromInput(raw)
	if err != nil {
		errs[name] = schema.Label(name) + " is invalid"
		return t
	}
	return parsed
}
