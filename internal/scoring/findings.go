package scoring

import (
	"fmt"
	"math"
	"sort"

	"faithai-profile/internal/domain"
)

// keyFindings aplica las reglas de hallazgos: primero correlaciones fuertes, luego
// diferencias de segmento, cada grupo ordenado por magnitud absoluta.
func (e *Engine) keyFindings(overall domain.GroupStats, segments []domain.SegmentStats) []domain.KeyFinding {
	if !overall.HasData {
		return nil
	}
	th := e.cal.Findings
	findings := append(correlationFindings(overall, th.Correlation), segmentFindings(overall, segments, th)...)
	if len(findings) > th.MaxFindings {
		findings = findings[:th.MaxFindings]
	}
	return findings
}

func correlationFindings(overall domain.GroupStats, threshold float64) []domain.KeyFinding {
	m := overall.Correlations
	if m == nil {
		return nil
	}
	var out []domain.KeyFinding
	for i := range m.Dimensions {
		for j := i + 1; j < len(m.Dimensions); j++ {
			r := m.Values[i][j]
			if math.Abs(r) < threshold {
				continue
			}
			a, b := m.Dimensions[i], m.Dimensions[j]
			direction := "positive"
			if r < 0 {
				direction = "négative"
			}
			out = append(out, domain.KeyFinding{
				Kind:       domain.FindingCorrelation,
				Text:       fmt.Sprintf("Corrélation %s forte entre %s et %s (r = %s).", direction, a.Label(), b.Label(), frNum(r, 2)),
				Magnitude:  r,
				Dimensions: []domain.Dimension{a, b},
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Magnitude) > math.Abs(out[j].Magnitude)
	})
	return out
}

func segmentFindings(overall domain.GroupStats, segments []domain.SegmentStats, th FindingThresholds) []domain.KeyFinding {
	var out []domain.KeyFinding
	for _, seg := range segments {
		if !seg.HasData || seg.N < th.MinSegmentSize {
			continue
		}
		for _, d := range domain.AllDimensions {
			segStat, ok := seg.Stat(d)
			if !ok {
				continue
			}
			all, ok := overall.Stat(d)
			if !ok {
				continue
			}
			delta := round(segStat.Mean-all.Mean, 2)
			if math.Abs(delta) < th.SegmentDelta {
				continue
			}
			direction := "plus élevée"
			sign := "+"
			if delta < 0 {
				direction = "plus basse"
				sign = ""
			}
			out = append(out, domain.KeyFinding{
				Kind: domain.FindingSegmentDelta,
				Text: fmt.Sprintf("Segment %s = %s : %s %s que l'ensemble (%s%s ; n = %d).",
					seg.Segment, seg.Bucket, d.Label(), direction, sign, frNum(delta, 2), seg.N),
				Magnitude:  delta,
				Dimensions: []domain.Dimension{d},
				Segment:    seg.Segment,
				Bucket:     seg.Bucket,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return math.Abs(out[i].Magnitude) > math.Abs(out[j].Magnitude)
	})
	return out
}
