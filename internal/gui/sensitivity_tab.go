//go:build !nogui
// +build !nogui

package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"motionplay/internal/log"
	"motionplay/internal/sensitivity"
)

// createSensitivityTab builds one slider per tuning parameter. Ranges and
// steps come from the parameter catalog, so the sliders can never produce
// an out-of-range value.
func (a *App) createSensitivityTab() fyne.CanvasObject {
	rows := container.NewVBox()
	sliders := make(map[string]*widget.Slider, len(sensitivity.Parameters()))

	for _, p := range sensitivity.Parameters() {
		p := p
		current, err := a.tuning.Get(p.Name)
		if err != nil {
			continue
		}

		value := widget.NewLabel(fmt.Sprintf("%.2f", current))
		slider := widget.NewSlider(p.Min, p.Max)
		slider.Step = p.Step
		slider.SetValue(current)
		slider.OnChanged = func(v float64) {
			if err := a.tuning.Set(p.Name, v); err != nil {
				log.Warnf("gui: %v", err)
				return
			}
			value.SetText(fmt.Sprintf("%.2f", v))
		}
		sliders[p.Name] = slider

		name := widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		hint := widget.NewLabel(p.Description)
		rows.Add(container.NewVBox(
			container.NewBorder(nil, nil, name, value),
			slider,
			hint,
		))
	}

	reset := widget.NewButton("Reset to defaults", func() {
		a.tuning.ResetToDefault()
		for name, slider := range sliders {
			if val, err := a.tuning.Get(name); err == nil {
				slider.SetValue(val)
			}
		}
	})

	return container.NewBorder(nil, reset, nil, nil, container.NewVScroll(rows))
}
