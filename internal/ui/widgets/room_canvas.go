package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// materialColors gives each flooring material a recognisable fill.
var materialColors = map[model.Material]color.NRGBA{
	model.MaterialTile:     {R: 176, G: 190, B: 197, A: 255}, // grey
	model.MaterialHardwood: {R: 161, G: 110, B: 66, A: 255},  // oak
	model.MaterialLaminate: {R: 210, G: 180, B: 140, A: 255}, // tan
	model.MaterialVinyl:    {R: 141, G: 160, B: 120, A: 255}, // sage
	model.MaterialCarpet:   {R: 121, G: 134, B: 203, A: 255}, // indigo
}

// MaterialColor returns the fill used for m, grey for unknown materials.
func MaterialColor(m model.Material) color.NRGBA {
	if c, ok := materialColors[m]; ok {
		return c
	}
	return materialColors[model.MaterialTile]
}

// RoomCanvas draws a room to scale: its imported outline when it has one,
// otherwise the length x width rectangle.
type RoomCanvas struct {
	widget.BaseWidget
	room      model.Room
	units     model.UnitSystem
	maxWidth  float32
	maxHeight float32
}

func NewRoomCanvas(room model.Room, units model.UnitSystem, maxW, maxH float32) *RoomCanvas {
	rc := &RoomCanvas{
		room:      room,
		units:     units,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	rc.ExtendBaseWidget(rc)
	return rc
}

func (rc *RoomCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newRoomCanvasRenderer(rc)
}

type roomCanvasRenderer struct {
	rc      *RoomCanvas
	objects []fyne.CanvasObject
}

func newRoomCanvasRenderer(rc *RoomCanvas) *roomCanvasRenderer {
	r := &roomCanvasRenderer{rc: rc}
	r.rebuild()
	return r
}

// fitScale returns the factor that fits a w x h room inside the canvas bounds.
func fitScale(w, h, maxW, maxH float32) float32 {
	if w <= 0 || h <= 0 {
		return 0
	}
	scale := maxW / w
	if s := maxH / h; s < scale {
		scale = s
	}
	return scale
}

func (r *roomCanvasRenderer) rebuild() {
	r.objects = nil

	room := r.rc.room
	roomW := float32(room.Length)
	roomH := float32(room.Width)
	scale := fitScale(roomW, roomH, r.rc.maxWidth, r.rc.maxHeight)
	if scale == 0 {
		return
	}

	canvasW := roomW * scale
	canvasH := roomH * scale
	fill := MaterialColor(room.Material)

	if len(room.Outline) < 3 {
		bg := canvas.NewRectangle(fill)
		bg.StrokeColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		bg.StrokeWidth = 2
		bg.Resize(fyne.NewSize(canvasW, canvasH))
		r.objects = append(r.objects, bg)
	} else {
		// Light bounding box behind the outline shows what is being estimated
		box := canvas.NewRectangle(color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: 70})
		box.Resize(fyne.NewSize(canvasW, canvasH))
		r.objects = append(r.objects, box)

		for i, p := range room.Outline {
			q := room.Outline[(i+1)%len(room.Outline)]
			edge := canvas.NewLine(color.NRGBA{R: 60, G: 60, B: 60, A: 255})
			edge.StrokeWidth = 2
			// Flip Y so the plan reads the same way as in the drawing
			edge.Position1 = fyne.NewPos(float32(p.X)*scale, canvasH-float32(p.Y)*scale)
			edge.Position2 = fyne.NewPos(float32(q.X)*scale, canvasH-float32(q.Y)*scale)
			r.objects = append(r.objects, edge)
		}
	}

	if canvasW > 60 && canvasH > 24 {
		unit := r.rc.units.LengthLabel()
		label := canvas.NewText(fmt.Sprintf("%.1f x %.1f %s", room.Length, room.Width, unit), color.Black)
		label.TextSize = 10
		label.Move(fyne.NewPos(4, 2))
		r.objects = append(r.objects, label)
	}
}

func (r *roomCanvasRenderer) Layout(size fyne.Size)        {}
func (r *roomCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *roomCanvasRenderer) Destroy()                     {}
func (r *roomCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *roomCanvasRenderer) MinSize() fyne.Size {
	room := r.rc.room
	scale := fitScale(float32(room.Length), float32(room.Width), r.rc.maxWidth, r.rc.maxHeight)
	return fyne.NewSize(float32(room.Length)*scale, float32(room.Width)*scale)
}
