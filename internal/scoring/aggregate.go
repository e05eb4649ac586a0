package scoring

import (
	"context"
	"math"
	"runtime"
	"sort"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"faithai-profile/internal/domain"
)

const zeroVariance = 1e-9

type respondentRow struct {
	values   [7]float64
	profile  domain.ProfileID
	segments map[string]string
}

// Aggregate recalcula las estadisticas poblacionales completas sobre la coleccion.
// Una coleccion vacia devuelve HasData=false, nunca un error.
func (e *Engine) Aggregate(collection []domain.Answers, segFn SegmentKeyFunc) domain.PopulationStats {
	out, _ := e.AggregateContext(context.Background(), collection, segFn)
	return out
}

// AggregateContext es Aggregate con cancelacion. El mapeo por respondente corre en paralelo;
// la reduccion es secuencial sobre filas indexadas, asi el resultado no depende del scheduling.
func (e *Engine) AggregateContext(ctx context.Context, collection []domain.Answers, segFn SegmentKeyFunc) (domain.PopulationStats, error) {
	rows := make([]respondentRow, len(collection))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range collection {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a := collection[i]
			values, _ := e.dimensionValues(a)
			rows[i] = respondentRow{values: values, profile: e.Classify(values)}
			if segFn != nil {
				rows[i].segments = segFn(a)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.PopulationStats{}, err
	}

	overall := e.groupStats(rows)
	segments := e.segmentStats(rows)
	return domain.PopulationStats{
		GroupStats:  overall,
		Segments:    segments,
		KeyFindings: e.keyFindings(overall, segments),
	}, nil
}

func (e *Engine) segmentStats(rows []respondentRow) []domain.SegmentStats {
	type key struct{ segment, bucket string }
	groups := make(map[key][]respondentRow)
	for _, r := range rows {
		for seg, bucket := range r.segments {
			if seg == "" || bucket == "" {
				continue
			}
			k := key{seg, bucket}
			groups[k] = append(groups[k], r)
		}
	}
	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].segment != keys[j].segment {
			return keys[i].segment < keys[j].segment
		}
		return keys[i].bucket < keys[j].bucket
	})
	out := make([]domain.SegmentStats, 0, len(keys))
	for _, k := range keys {
		out = append(out, domain.SegmentStats{
			Segment:    k.segment,
			Bucket:     k.bucket,
			GroupStats: e.groupStats(groups[k]),
		})
	}
	return out
}

func (e *Engine) groupStats(rows []respondentRow) domain.GroupStats {
	n := len(rows)
	gs := domain.GroupStats{N: n, Caveat: e.caveat(n)}
	if n == 0 {
		return gs
	}
	gs.HasData = true

	var columns [7]stats.Float64Data
	for i := range columns {
		columns[i] = make(stats.Float64Data, n)
	}
	for r, row := range rows {
		for i := range columns {
			columns[i][r] = row.values[i]
		}
	}

	sds := make([]float64, len(columns))
	gs.Dimensions = make([]domain.DimensionStat, len(columns))
	for i, d := range domain.AllDimensions {
		mean, _ := stats.Mean(columns[i])
		sd := 0.0
		if n > 1 {
			sd, _ = stats.StandardDeviationSample(columns[i])
		}
		sds[i] = sd
		gs.Dimensions[i] = domain.DimensionStat{Dimension: d, Mean: round(mean, 3), StdDev: round(sd, 3), N: n}
	}
	gs.Correlations = correlationMatrix(columns, sds)
	gs.ProfileHistogram = e.histogram(rows)
	return gs
}

// correlationMatrix es simetrica con diagonal 1; una dimension sin varianza correlaciona 0.
func correlationMatrix(columns [7]stats.Float64Data, sds []float64) *domain.CorrelationMatrix {
	m := &domain.CorrelationMatrix{
		Dimensions: append([]domain.Dimension(nil), domain.AllDimensions[:]...),
		Values:     make([][]float64, len(columns)),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, len(columns))
		m.Values[i][i] = 1
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := pearson(columns[i], columns[j], sds[i], sds[j])
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func pearson(a, b stats.Float64Data, sdA, sdB float64) float64 {
	if len(a) < 2 || sdA < zeroVariance || sdB < zeroVariance {
		return 0
	}
	r, err := stats.Pearson(a, b)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return round(clamp(r, -1, 1), 3)
}

// histogram cuenta perfiles principales en el orden del catalogo, incluidos los ceros.
func (e *Engine) histogram(rows []respondentRow) []domain.ProfileCount {
	counts := make(map[domain.ProfileID]int, len(e.catalog.Profiles))
	for _, r := range rows {
		counts[r.profile]++
	}
	out := make([]domain.ProfileCount, len(e.catalog.Profiles))
	for i, p := range e.catalog.Profiles {
		out[i] = domain.ProfileCount{ProfileID: p.ID, Count: counts[p.ID]}
	}
	return out
}

func (e *Engine) caveat(n int) domain.SampleCaveat {
	switch {
	case n == 0:
		return domain.SampleCaveat{Confidence: domain.ConfidenceNone, InsufficientSample: true}
	case n < e.cal.Sample.Low:
		return domain.SampleCaveat{Confidence: domain.ConfidenceLow, InsufficientSample: true}
	case n < e.cal.Sample.Moderate:
		return domain.SampleCaveat{Confidence: domain.ConfidenceModerate, ModerateSample: true}
	default:
		return domain.SampleCaveat{Confidence: domain.ConfidenceHigh}
	}
}
