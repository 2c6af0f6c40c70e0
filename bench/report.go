package bench

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV dumps results with one row per engine run, ready for plotting:
//
//	engine,workers,bytes,seconds,mib_per_s
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"engine", "workers", "bytes", "seconds", "mib_per_s"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Engine,
			strconv.Itoa(r.Workers),
			strconv.FormatInt(r.Bytes, 10),
			strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(r.Throughput(), 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
