// Command trajdump prints the sampled trajectory of a launch to stdout,
// as CSV (t,x,y) or as a WKT LINESTRING.
//
//	trajdump --speed 20 --angle 45 --step 0.1
//	trajdump --format wkt
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"projectile/internal/config"
	"projectile/internal/geo"
	"projectile/internal/logging"
	"projectile/trajectory"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet("trajdump", pflag.ExitOnError)
	format := fs.String("format", "csv", "csv|wkt")
	configDir := fs.String("config", "", "directory holding "+config.FileName+".json")
	config.RegisterLaunchFlags(fs)
	config.RegisterLogFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := config.Load(fs, *configDir); err != nil {
		fatalf("%v", err)
	}
	logger := logging.Setup(nil, config.GetLogConfig().Level)

	launch := config.GetLaunch()
	tr, err := launch.Physics.Compute(launch.InitialSpeed, launch.LaunchAngle)
	if err != nil {
		fatalf("compute: %v", err)
	}
	logger.Debug("trajectory computed", "samples", tr.Len())

	if err := dump(os.Stdout, tr, *format); err != nil {
		fatalf("dump: %v", err)
	}
}

func dump(w io.Writer, tr *trajectory.Trajectory, format string) error {
	switch strings.ToLower(format) {
	case "csv":
		return writeCSV(w, tr)
	case "wkt":
		wkt, err := geo.WKT(tr)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, wkt)
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeCSV(w io.Writer, tr *trajectory.Trajectory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"t", "x", "y"}); err != nil {
		return err
	}
	for _, p := range tr.Points() {
		row := []string{
			strconv.FormatFloat(p.Time, 'g', -1, 64),
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
