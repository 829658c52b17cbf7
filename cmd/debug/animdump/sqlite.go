package main

import (
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"animc/anim"
	"animc/memscene"
)

const schema = `
CREATE TABLE curves (
	id        INTEGER PRIMARY KEY,
	node      TEXT NOT NULL,
	attr      TEXT NOT NULL,
	layer     TEXT NOT NULL,
	input     TEXT NOT NULL,
	output    TEXT NOT NULL,
	weighted  INTEGER NOT NULL,
	pre       TEXT NOT NULL,
	post      TEXT NOT NULL
);
CREATE TABLE keys (
	curve_id  INTEGER NOT NULL REFERENCES curves(id),
	idx       INTEGER NOT NULL,
	input     REAL NOT NULL,
	value     REAL NOT NULL,
	tan_in    TEXT NOT NULL,
	tan_out   TEXT NOT NULL,
	in_angle  REAL,
	in_weight REAL,
	out_angle  REAL,
	out_weight REAL,
	breakdown INTEGER NOT NULL,
	PRIMARY KEY (curve_id, idx)
);
`

// writeDatabase stores every unlayered and layer curve of selection in a new
// SQLite database.
func writeDatabase(sc *memscene.Scene, path string) (curves, keys int, err error) {
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return 0, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer conn.Close()

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return 0, 0, fmt.Errorf("create schema: %w", err)
	}

	defer sqlitex.Save(conn)(&err)

	store := func(node, attr, layer string, c *anim.Curve) error {
		err := sqlitex.Execute(conn,
			`INSERT INTO curves (node, attr, layer, input, output, weighted, pre, post) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{node, attr, layer, c.Input.String(), c.Output.String(), c.Weighted, c.PreInfinity.String(), c.PostInfinity.String()}})
		if err != nil {
			return err
		}
		id := conn.LastInsertRowID()
		curves++
		for i, k := range c.Keys {
			args := []any{id, i, k.Input, k.Value, k.In.Kind.String(), k.Out.Kind.String(), nil, nil, nil, nil, k.Breakdown}
			if k.In.IsFixed() {
				args[6], args[7] = k.In.Angle, k.In.Weight
			}
			if k.Out.IsFixed() {
				args[8], args[9] = k.Out.Angle, k.Out.Weight
			}
			err := sqlitex.Execute(conn,
				`INSERT INTO keys (curve_id, idx, input, value, tan_in, tan_out, in_angle, in_weight, out_angle, out_weight, breakdown) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				&sqlitex.ExecOptions{Args: args})
			if err != nil {
				return err
			}
			keys++
		}
		return nil
	}

	layerNames := sc.OrderedLayerNames()
	for _, info := range sc.Selection(true) {
		for _, p := range sc.Attributes(info.Name) {
			if c := sc.Curve(p, ""); c != nil {
				if err = store(info.Name, p.Leaf, "", c); err != nil {
					return curves, keys, fmt.Errorf("store %s: %w", p.Name(), err)
				}
			}
			for _, l := range layerNames {
				if c := sc.Curve(p, l); c != nil {
					if err = store(info.Name, p.Leaf, l, c); err != nil {
						return curves, keys, fmt.Errorf("store %s on %s: %w", p.Name(), l, err)
					}
				}
			}
		}
	}
	return curves, keys, nil
}
