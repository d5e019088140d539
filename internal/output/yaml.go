package output

import (
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"ix-advisor/internal/engine"
)

type reportView struct {
	Proposals []proposalView `yaml:"proposals"`
	Errors    []errorView    `yaml:"errors,omitempty"`
}

type proposalView struct {
	Rank               int     `yaml:"rank"`
	Database           string  `yaml:"database"`
	Table              string  `yaml:"table"`
	Name               string  `yaml:"name"`
	Statement          string  `yaml:"statement"`
	EqualityColumns    string  `yaml:"equality_columns,omitempty"`
	InequalityColumns  string  `yaml:"inequality_columns,omitempty"`
	IncludedColumns    string  `yaml:"included_columns,omitempty"`
	ImprovementMeasure float64 `yaml:"improvement_measure"`
	UserSeeks          int64   `yaml:"user_seeks"`
	UserScans          int64   `yaml:"user_scans"`
	UniqueCompiles     int64   `yaml:"unique_compiles"`
	AvgTotalUserCost   float64 `yaml:"avg_total_user_cost"`
	AvgUserImpact      float64 `yaml:"avg_user_impact"`
	LastUserSeek       string  `yaml:"last_user_seek,omitempty"`
	CollidesWith       int     `yaml:"collides_with,omitempty"`
	Renamed            bool    `yaml:"renamed,omitempty"`
}

type errorView struct {
	Database string `yaml:"database"`
	Error    string `yaml:"error"`
}

func writeYAML(w io.Writer, res *engine.Result) error {
	view := reportView{Proposals: []proposalView{}}
	for i, p := range res.Proposals {
		mi := p.Index
		pv := proposalView{
			Rank:               rank(i),
			Database:           mi.Database,
			Table:              mi.TableName(),
			Name:               p.Name,
			Statement:          p.Statement,
			EqualityColumns:    mi.EqualityColumns.String,
			InequalityColumns:  mi.InequalityColumns.String,
			IncludedColumns:    mi.IncludedColumns.String,
			ImprovementMeasure: mi.ImprovementMeasure,
			UserSeeks:          mi.UserSeeks,
			UserScans:          mi.UserScans,
			UniqueCompiles:     mi.UniqueCompiles,
			AvgTotalUserCost:   mi.AvgTotalUserCost,
			AvgUserImpact:      mi.AvgUserImpact,
			Renamed:            p.Renamed,
		}
		if mi.LastUserSeek.Valid {
			pv.LastUserSeek = mi.LastUserSeek.Time.Format(time.RFC3339)
		}
		if p.CollidesWith >= 0 {
			pv.CollidesWith = rank(p.CollidesWith)
		}
		view.Proposals = append(view.Proposals, pv)
	}
	for _, e := range res.Errors {
		view.Errors = append(view.Errors, errorView{Database: e.Database, Error: e.Err.Error()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}
