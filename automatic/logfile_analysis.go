package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
)

var ErrBadLogFile = errors.New("not an autoplay log")

type finalTurn struct {
	turn, x, o int
}

// AnalyzeLogFile rebuilds the summary of an autoplay run from its CSV turn
// log. Lines of different games may be interleaved.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	finals := map[string]finalTurn{}
	var order []string
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			if record[0] != csvHeader[0] {
				return nil, ErrBadLogFile
			}
			continue
		}
		nums, err := atoiAll(record[1], record[5], record[6])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadLogFile, line, err)
		}
		id := record[0]
		prev, seen := finals[id]
		if !seen {
			order = append(order, id)
		}
		if nums[0] > prev.turn {
			finals[id] = finalTurn{turn: nums[0], x: nums[1], o: nums[2]}
		}
	}

	s := &Summary{}
	for _, ft := range lo.Map(order, func(id string, _ int) finalTurn { return finals[id] }) {
		s.Add(ft.x, ft.o, ft.turn)
	}
	return s, nil
}

func atoiAll(fields ...string) ([]int, error) {
	nums := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}
