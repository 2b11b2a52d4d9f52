package render

// Color is an RGBA color, alpha in [0,1].
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Stroke is the styling of a stroked path or circle.
type Stroke struct {
	Color Color     `json:"color"`
	Width float64   `json:"width"`
	Dash  []float64 `json:"dash,omitempty"`
}

// Vec is a point in device space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Surface is the drawing collaborator.
// All coordinates are device space, the core does the mapping.
type Surface interface {
	Clear(w, h float64)
	FillRect(x, y, w, h float64, c Color)
	StrokePath(path []Vec, s Stroke)
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r float64, s Stroke)
}

// Op identifies a recorded draw command.
type Op string

const (
	OpClear  Op = "clear"
	OpRect   Op = "rect"
	OpPath   Op = "path"
	OpCircle Op = "circle"
	OpRing   Op = "ring"
)

// Command is one serialisable draw instruction,
// executed in order by the canvas client.
type Command struct {
	Op     Op      `json:"op"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	W      float64 `json:"w,omitempty"`
	H      float64 `json:"h,omitempty"`
	R      float64 `json:"r,omitempty"`
	Path   []Vec   `json:"path,omitempty"`
	Color  *Color  `json:"color,omitempty"`
	Stroke *Stroke `json:"stroke,omitempty"`
}

// Recorder is a Surface that records commands instead of painting,
// so that frames can be shipped over the wire.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0)}
}

// Commands returns the recorded commands and resets the recorder.
func (r *Recorder) Commands() []Command {
	commands := r.commands
	r.commands = make([]Command, 0, len(commands))
	return commands
}

func (r *Recorder) Clear(w, h float64) {
	r.commands = append(r.commands, Command{Op: OpClear, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.commands = append(r.commands, Command{Op: OpRect, X: x, Y: y, W: w, H: h, Color: &c})
}

func (r *Recorder) StrokePath(path []Vec, s Stroke) {
	r.commands = append(r.commands, Command{Op: OpPath, Path: path, Stroke: &s})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color) {
	r.commands = append(r.commands, Command{Op: OpCircle, X: x, Y: y, R: radius, Color: &c})
}

func (r *Recorder) StrokeCircle(x, y, radius float64, s Stroke) {
	r.commands = append(r.commands, Command{Op: OpRing, X: x, Y: y, R: radius, Stroke: &s})
}
