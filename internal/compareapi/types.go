package compareapi

const (
	DefaultServerHost = "0.0.0.0"
	DefaultServerPort = 8080
	DefaultBodyLimit  = 16 * 1024 * 1024
)

// ServerConfig configures the comparison service.
type ServerConfig struct {
	Host      string
	Port      int
	BodyLimit int
}

// TablePayload is a sample table on the wire.
type TablePayload struct {
	Name   string      `json:"name"`
	Fields []string    `json:"fields"`
	Rows   [][]float64 `json:"rows"`
}

// CompareOptions carries the field spec and report length. Empty fields
// fall back to the engine defaults.
type CompareOptions struct {
	CoordAField string `json:"coord_a_field"`
	CoordBField string `json:"coord_b_field"`
	ValueField  string `json:"value_field"`
	TopN        int    `json:"top_n"`
}

type CompareRequest struct {
	Reference      TablePayload   `json:"reference"`
	Reconstruction TablePayload   `json:"reconstruction"`
	Options        CompareOptions `json:"options"`
}

type SummaryPayload struct {
	MSE    float64 `json:"mse"`
	RMSE   float64 `json:"rmse"`
	Bias   float64 `json:"bias"`
	Points int     `json:"points"`
}

type TopErrorPayload struct {
	CoordA float64 `json:"coord_a"`
	CoordB float64 `json:"coord_b"`
	Ref    float64 `json:"reference"`
	Recon  float64 `json:"reconstruction"`
	Diff   float64 `json:"diff"`
}

// GridsPayload carries the three pixel-aligned grids. Missing cells are
// null, since NaN is not representable in JSON.
type GridsPayload struct {
	RowCoords      []float64    `json:"row_coords"`
	ColCoords      []float64    `json:"col_coords"`
	Reconstruction [][]*float64 `json:"reconstruction"`
	Reference      [][]*float64 `json:"reference"`
	AbsError       [][]*float64 `json:"abs_error"`
}

type CompareResponse struct {
	Summary   SummaryPayload    `json:"summary"`
	TopErrors []TopErrorPayload `json:"top_errors"`
	Grids     GridsPayload      `json:"grids"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
