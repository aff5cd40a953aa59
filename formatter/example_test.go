package formatter_test

import (
	"fmt"
	"io"
	"time"

	"github.com/philipp01105/richlog/console"
	"github.com/philipp01105/richlog/core"
	"github.com/philipp01105/richlog/formatter"
	"github.com/philipp01105/richlog/render"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		Message: "disk almost full",
		Fields:  []core.Field{{Key: "free", Type: core.StringType, Str: "2%"}},
	}

	r, _ := render.NewFluid(render.Config{ShowTime: true, ShowLevel: true, TimeFormat: "[%X]"})
	out, _ := r.Render(f.Format(entry))

	c := console.New(console.Config{Writer: io.Discard, NoColor: true, SoftWrap: true})
	fmt.Println(c.Sprint(out))
	// Output:
	// [12:00:00] WARNING  disk almost full free=2%
}
