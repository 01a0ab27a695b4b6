package chartview

// Jobs are view changes that can be queued until a chart has been laid out,
// or driven frame by frame by an animator. They carry no notion of time: an
// animator computes a phase in [0, 1] from its own clock and easing, and
// steps the job with it.

// A Job is a view change that needs a chart with a size and data. See
// [Chart.AddJob].
type Job interface {
	Run(c *Chart)
}

// An Anchor is a position within the content rect that a [MoveViewJob] moves
// its value to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorLeftCenter
	AnchorCenter
	AnchorBottomLeft
)

// A ZoomJob zooms by a relative factor about the content center and then
// centers the view on a data value.
type ZoomJob struct {
	ScaleX, ScaleY float64
	Value          Point
	Dependency     AxisDependency
}

func (j ZoomJob) Run(c *Chart) {
	vp := c.Viewport
	vp.Refresh(vp.Zoom(j.ScaleX, j.ScaleY, vp.ContentCenter()), nil)
	c.commit(c.centerOn(j.Value, j.Dependency))
}

// A MoveViewJob pans so that a data value lands on an anchor of the content
// rect.
type MoveViewJob struct {
	Value      Point
	Dependency AxisDependency
	Anchor     Anchor
	// XOnly pans along the x axis only and keeps the view where it is across
	// it.
	XOnly bool
}

func (j MoveViewJob) Run(c *Chart) {
	px := c.PixelForValues(j.Value.X, j.Value.Y, j.Dependency).
		Translate(c.anchorOffset(j.Anchor).Negate())
	if j.XOnly {
		origin := c.Viewport.ContentRect().Origin()
		if c.orientation == Normal {
			px.Y = origin.Y
		} else {
			px.X = origin.X
		}
	}
	c.commit(c.Viewport.Translate(px))
}

// An AnimatedMoveViewJob moves the value on the content rect's origin from
// From to To.
type AnimatedMoveViewJob struct {
	From, To   Point
	Dependency AxisDependency
}

// Step moves the view to the state at phase. A phase of 0 is the start and a
// phase of 1 the end of the animation.
func (j *AnimatedMoveViewJob) Step(c *Chart, phase float64) {
	MoveViewJob{Value: j.From.Lerp(j.To, phase), Dependency: j.Dependency}.Run(c)
}

// An AnimatedZoomJob interpolates the absolute zoom from FromScale to ToScale
// while moving the value at the content center from FromCenter to ToCenter.
type AnimatedZoomJob struct {
	FromScale, ToScale   Vec2
	FromCenter, ToCenter Point
	Dependency           AxisDependency
}

// Step sets the zoom and center for phase. A phase of 0 is the start and a
// phase of 1 the end of the animation.
func (j *AnimatedZoomJob) Step(c *Chart, phase float64) {
	vp := c.Viewport
	sx := j.FromScale.X + (j.ToScale.X-j.FromScale.X)*phase
	sy := j.FromScale.Y + (j.ToScale.Y-j.FromScale.Y)*phase
	vp.Refresh(vp.SetZoom(sx, sy, Point{}), nil)
	c.commit(c.centerOn(j.FromCenter.Lerp(j.ToCenter, phase), j.Dependency))
}

// centerOn proposes a pan that moves the data value v to the center of the
// content rect.
func (c *Chart) centerOn(v Point, dep AxisDependency) Affine {
	px := c.PixelForValues(v.X, v.Y, dep).Translate(c.anchorOffset(AnchorCenter).Negate())
	return c.Viewport.Translate(px)
}
