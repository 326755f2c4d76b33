package format

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

var ErrInvalidDate = errors.New("invalid date")

// inputLayouts are tried in order; the first one that parses wins.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

type layouts struct {
	date     string
	dateTime string
	day      string
	meridiem *strings.Replacer
}

func layoutsFor(tag language.Tag) layouts {
	base, _ := tag.Base()

	switch base.String() {
	case "ko":
		return layouts{
			date:     "2006년 1월 2일",
			dateTime: "2006년 1월 2일 PM 03:04",
			day:      "1월 2일",
			meridiem: strings.NewReplacer("AM", "오전", "PM", "오후"),
		}
	default:
		return layouts{
			date:     "Jan 2, 2006",
			dateTime: "Jan 2, 2006, 03:04 PM",
			day:      "Jan 2",
		}
	}
}

// Parse reads any of the accepted ISO-like inputs. Values without a zone are
// taken as local wall-clock time and never shifted.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Wrapf(ErrInvalidDate, "%q", s)
}

func (f *Formatter) Date(s string) (string, error) {
	return f.render(s, f.layouts.date)
}

// DateTime renders date and wall-clock time with a 12-hour clock.
func (f *Formatter) DateTime(s string) (string, error) {
	return f.render(s, f.layouts.dateTime)
}

// DayLabel is the short month/day form used on chart axes.
func (f *Formatter) DayLabel(s string) (string, error) {
	return f.render(s, f.layouts.day)
}

func (f *Formatter) render(s, layout string) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}

	out := t.Format(layout)
	if f.layouts.meridiem != nil {
		out = f.layouts.meridiem.Replace(out)
	}

	return out, nil
}
