package vguppi

// ParamMeta describes one input parameter for UI and sweep purposes: a
// human-readable label, a plausible slider range with step size, the default
// value and a display group. The range bounds sweeps (heatmaps, sensitivity);
// they are not validation limits.
type ParamMeta struct {
	Name    string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Group   string
}

// Parameter groups in display order.
const (
	GroupPrices      = "Prices"
	GroupMargins     = "Margins"
	GroupDiversion   = "Diversion Ratios"
	GroupPassThrough = "Pass-through"
	GroupElasticity  = "Elasticity"
)

// GroupOrder is the canonical ordering of parameter groups.
var GroupOrder = []string{
	GroupPrices,
	GroupMargins,
	GroupDiversion,
	GroupPassThrough,
	GroupElasticity,
}

// ParamMetas lists metadata for every parameter, in ParamNames order.
var ParamMetas = []ParamMeta{
	{Name: "p_D", Label: "D's product price (p_D)", Min: 10, Max: 50, Step: 1, Default: 20, Group: GroupPrices},
	{Name: "p_R", Label: "R's product price (p_R)", Min: 10, Max: 50, Step: 1, Default: 20, Group: GroupPrices},
	{Name: "w_D", Label: "U's price to D (w_D)", Min: 1, Max: 50, Step: 1, Default: 10, Group: GroupPrices},
	{Name: "w_R", Label: "U's price to R (w_R)", Min: 1, Max: 50, Step: 1, Default: 10, Group: GroupPrices},
	{Name: "w_U", Label: "U's avg price to rivals (w_U)", Min: 1, Max: 50, Step: 1, Default: 10, Group: GroupPrices},
	{Name: "m_D", Label: "D's profit margin (m_D)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupMargins},
	{Name: "m_R", Label: "R's profit margin (m_R)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupMargins},
	{Name: "m_U", Label: "U's avg margin to rivals (m_U)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupMargins},
	{Name: "m_UD", Label: "U's margin on sales to D (m_UD)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupMargins},
	{Name: "dr_RD", Label: "Diversion R→D (dr_RD)", Min: 0, Max: 1, Step: 0.05, Default: 0.4, Group: GroupDiversion},
	{Name: "dr_DU", Label: "Diversion D→U (dr_DU)", Min: 0, Max: 1, Step: 0.05, Default: 0.25, Group: GroupDiversion},
	{Name: "dr_UD", Label: "Diversion U→D (dr_UD)", Min: 0, Max: 1, Step: 0.05, Default: 0.4, Group: GroupDiversion},
	{Name: "ptr_U", Label: "Pass-through U→R (ptr_U)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupPassThrough},
	{Name: "ptr_R", Label: "Pass-through R cost→price (ptr_R)", Min: 0, Max: 1, Step: 0.05, Default: 0.5, Group: GroupPassThrough},
	{Name: "e", Label: "Demand elasticity (e)", Min: 0.1, Max: 5, Step: 0.05, Default: 1, Group: GroupElasticity},
}

// MetaFor returns the metadata for the named parameter.
func MetaFor(name string) (ParamMeta, error) {
	for _, m := range ParamMetas {
		if m.Name == name {
			return m, nil
		}
	}
	return ParamMeta{}, &UnknownParameterError{Name: name}
}

// Measure names. Keep these values stable; they appear in CSV output and API
// payloads.
const (
	MeasureU  = "vGUPPI_U"
	MeasureR  = "vGUPPI_R"
	MeasureD1 = "vGUPPI_D1"
	MeasureD2 = "vGUPPI_D2"
	MeasureD3 = "vGUPPI_D3"
)

// MeasureNames lists the five measures in reporting order.
var MeasureNames = []string{MeasureU, MeasureR, MeasureD1, MeasureD2, MeasureD3}

// MeasureDescriptions maps each measure to a one-line description.
var MeasureDescriptions = map[string]string{
	MeasureU:  "Upstream pricing pressure",
	MeasureR:  "Rival product-level pricing pressure",
	MeasureD1: "Downstream (no EDM, no input sub.)",
	MeasureD2: "Downstream (EDM, no input sub.)",
	MeasureD3: "Downstream (EDM + input sub.)",
}
