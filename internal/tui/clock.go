// Package tui implements the live clock view used by the watch command.
package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/soltime/internal/astro"
	"github.com/ja-he/soltime/internal/config"
	"github.com/ja-he/soltime/internal/events"
	"github.com/ja-he/soltime/internal/lst"
)

// ClockStyle holds the colors the clock view blends the sky tint from.
type ClockStyle struct {
	Day     colorful.Color
	Horizon colorful.Color
	Night   colorful.Color
	Text    colorful.Color
}

// StyleFromConfig parses the hex colors of a clock config.
func StyleFromConfig(c config.Clock) (ClockStyle, error) {
	style := ClockStyle{}
	for _, entry := range []struct {
		hex    string
		target *colorful.Color
	}{
		{c.DayColor, &style.Day},
		{c.HorizonColor, &style.Horizon},
		{c.NightColor, &style.Night},
		{c.TextColor, &style.Text},
	} {
		parsed, err := colorful.Hex(entry.hex)
		if err != nil {
			return style, fmt.Errorf("invalid clock color '%s' (%w)", entry.hex, err)
		}
		*entry.target = parsed
	}
	return style, nil
}

// ClockView renders the current local solar time and the upcoming events to a
// terminal (via tcell.Screen). It also handles synchronization on resize.
type ClockView struct {
	screen    tcell.Screen
	zone      *lst.Zone
	table     *events.Table
	style     ClockStyle
	needsSync bool
}

// NewClockView initializes the screen and returns a ClockView.
func NewClockView(zone *lst.Zone, table *events.Table, style ClockStyle) (*ClockView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("could not create screen (%w)", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize screen (%w)", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.Clear()

	return &ClockView{
		screen: screen,
		zone:   zone,
		table:  table,
		style:  style,
	}, nil
}

// Run draws the clock until the user quits (q, Escape, or Ctrl-C).
func (v *ClockView) Run() {
	defer v.screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			ev := v.screen.PollEvent()
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC ||
					(e.Key() == tcell.KeyRune && e.Rune() == 'q') {
					close(quit)
					return
				}
			case *tcell.EventResize:
				v.needsSync = true
			case nil:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	v.draw(time.Now())
	for {
		select {
		case <-quit:
			return
		case now := <-ticker.C:
			v.draw(now)
		}
	}
}

func (v *ClockView) draw(now time.Time) {
	obs := v.zone.Observer()
	local := v.zone.ToLocal(now)
	offset := v.zone.OffsetAt(now)

	sky := v.skyColor(now)
	bg := toTcell(sky)
	fg := toTcell(v.style.Text)
	base := tcell.StyleDefault.Background(bg).Foreground(fg)

	v.screen.Fill(' ', base)

	w, _ := v.screen.Size()
	v.drawText(1, 1, w-2, base, fmt.Sprintf("You are here: %s (%s)", obs.Name, obs.Region))
	v.drawText(1, 3, w-2, base.Bold(true), local.Format("15:04:05")+" "+lst.Key)
	v.drawText(1, 4, w-2, base, "UTC offset "+lst.FormatOffset(offset))

	row := 6
	for _, event := range v.table.Sorted() {
		marker := "  "
		if event.At.Before(now) {
			marker = "· "
		}
		line := fmt.Sprintf("%s%-10s %s", marker, event.Name, v.zone.ToLocal(event.At).Format("2006-01-02 15:04:05"))
		v.drawText(1, row, w-2, base, line)
		row++
	}

	if v.needsSync {
		v.needsSync = false
		v.screen.Sync()
	} else {
		v.screen.Show()
	}
}

// skyColor blends the configured colors by the sun's altitude: night below
// astronomical twilight, the horizon color at the horizon, the full day color
// from 30 degrees up.
func (v *ClockView) skyColor(now time.Time) colorful.Color {
	obs := v.zone.Observer()
	altitude := astro.Altitude(now, obs.Latitude, obs.Longitude)

	switch {
	case altitude <= -18.0:
		return v.style.Night
	case altitude < 0.0:
		return v.style.Night.BlendLab(v.style.Horizon, 1.0+altitude/18.0).Clamped()
	case altitude < 30.0:
		return v.style.Horizon.BlendLab(v.style.Day, altitude/30.0).Clamped()
	default:
		return v.style.Day
	}
}

func (v *ClockView) drawText(x, y, w int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= x+w {
			return
		}
		v.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
