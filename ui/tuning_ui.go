package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/monorpg/components"
	cfg "github.com/automoto/monorpg/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningRow is one line of the tuning panel.
type TuningRow struct {
	Name  string
	Value func(cfg.PlayerConfig) float64
}

// TuningRows lists the tunables shown in the panel, in display order.
var TuningRows = []TuningRow{
	{"move accel", func(p cfg.PlayerConfig) float64 { return p.MoveAccel }},
	{"max speed", func(p cfg.PlayerConfig) float64 { return p.MaxMoveSpeed }},
	{"ground drag", func(p cfg.PlayerConfig) float64 { return p.GroundDrag }},
	{"air drag", func(p cfg.PlayerConfig) float64 { return p.AirDrag }},
	{"jump", func(p cfg.PlayerConfig) float64 { return p.JumpLaunchVelocity }},
	{"gravity", func(p cfg.PlayerConfig) float64 { return p.GravityAccel }},
	{"terminal", func(p cfg.PlayerConfig) float64 { return p.TerminalVelocity }},
}

// FormatTuning renders a tunable for the panel.
func FormatTuning(row TuningRow, p cfg.PlayerConfig) string {
	return fmt.Sprintf("%-12s %8.2f", row.Name, row.Value(p))
}

// FormatState renders the player's live state for the panel.
func FormatState(p *components.PlayerData, anim *components.AnimationData) string {
	state := cfg.StateNone
	frame := 0
	if anim != nil {
		state = anim.CurrentSheet
		if anim.CurrentAnimation != nil {
			frame = anim.CurrentAnimation.Frame()
		}
	}
	return fmt.Sprintf("%s #%d %s", state, frame, p.Facing)
}

// TuningUI holds the ebitenui panel drawn over the game while the debug
// overlay is on.
type TuningUI struct {
	UI *ebitenui.UI

	stateLabel *widget.Label
	tuneLabels []*widget.Label
	normalFace text.Face
	headerFace text.Face
}

// NewTuningUI creates the panel.
func NewTuningUI() (*TuningUI, error) {
	tui := &TuningUI{}
	if err := tui.loadFonts(); err != nil {
		return nil, err
	}
	tui.buildUI()
	return tui, nil
}

func (tui *TuningUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading panel font: %w", err)
	}

	tui.headerFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   8,
	}
	return nil
}

func (tui *TuningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(1),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &tui.headerFace, &widget.LabelColor{
			Idle: cfg.Yellow,
		}),
	))

	tui.stateLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: cfg.Cyan,
		}),
	)
	panel.AddChild(tui.stateLabel)

	for _, row := range TuningRows {
		label := widget.NewLabel(
			widget.LabelOpts.Text(FormatTuning(row, cfg.Player), &tui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{220, 220, 220, 255},
			}),
		)
		tui.tuneLabels = append(tui.tuneLabels, label)
		panel.AddChild(label)
	}

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// UpdateUI refreshes the labels from the live tunables and player.
func (tui *TuningUI) UpdateUI(p *components.PlayerData, anim *components.AnimationData) {
	if p != nil && tui.stateLabel != nil {
		tui.stateLabel.Label = FormatState(p, anim)
	}
	for i, row := range TuningRows {
		if i < len(tui.tuneLabels) && tui.tuneLabels[i] != nil {
			tui.tuneLabels[i].Label = FormatTuning(row, cfg.Player)
		}
	}
}
