/*
 *     Copyright 2023 The modelgate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package normalizer

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/modelgate/modelgate/pkg/model"
)

// Row is one normalized input row. A row that cannot be normalized
// carries its error instead of aborting the rest of the batch.
type Row struct {
	Record model.FeatureRecord
	Err    error
}

// Normalizer converts one uploaded record set into feature rows. Column
// selection is configured per endpoint, not hard-coded per dataset; an
// empty column list selects every column of the upload.
type Normalizer struct {
	columns []string
}

// New normalizer selecting the given ordered columns.
func New(columns []string) *Normalizer {
	return &Normalizer{columns: columns}
}

// Normalize parses a CSV upload with a header row into feature rows.
// Numeric cells become float64 features, everything else stays a string.
func (n *Normalizer) Normalize(r io.Reader) ([]Row, error) {
	records, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, n.normalizeRecord(record))
	}

	return rows, nil
}

func (n *Normalizer) normalizeRecord(record map[string]string) Row {
	columns := n.columns
	if len(columns) == 0 {
		columns = make([]string, 0, len(record))
		for column := range record {
			columns = append(columns, column)
		}
		sort.Strings(columns)
	}

	features := model.FeatureRecord{}
	for _, column := range columns {
		v, ok := record[column]
		if !ok || v == "" {
			return Row{Err: fmt.Errorf("missing value for column %s", column)}
		}

		if f, err := strconv.ParseFloat(v, 64); err == nil {
			features[column] = f
		} else {
			features[column] = v
		}
	}

	return Row{Record: features}
}
