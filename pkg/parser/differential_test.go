// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package parser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// sqlCorpus exercises every major statement family both readers decode.
// The round-trip tests reuse it.
var sqlCorpus = []string{
	// Literals and constants
	"SELECT 1",
	"SELECT 42, -7, 3.14, .1, 1e10",
	"SELECT 'hello world'",
	"SELECT B'0101', X'EFFF'",
	"SELECT true, false, NULL",
	"SELECT $1, $2",

	// Expressions
	"SELECT 1 + 2 * 3",
	"SELECT a AND b OR NOT c FROM t",
	"SELECT x BETWEEN 1 AND 10 FROM t",
	"SELECT name LIKE 'a%' FROM t",
	"SELECT x IS NULL, y IS NOT NULL FROM t",
	"SELECT x IS TRUE, y IS NOT FALSE FROM t",
	"SELECT CASE WHEN x > 0 THEN 'pos' WHEN x < 0 THEN 'neg' ELSE 'zero' END FROM t",
	"SELECT COALESCE(a, b, 0), GREATEST(a, b), LEAST(a, b) FROM t",
	"SELECT CAST(x AS integer), y::text FROM t",
	"SELECT ARRAY[1, 2, 3], arr[1], arr[2:5] FROM t",
	"SELECT ROW(1, 'a', true)",
	"SELECT (a, b) = (c, d) FROM t",
	"SELECT x COLLATE \"de_DE\" FROM t",
	"SELECT current_date, current_timestamp, localtime",
	"SELECT GROUPING(a), GROUPING(a, b) FROM t GROUP BY a, b",

	// SELECT shapes
	"SELECT * FROM users",
	"SELECT DISTINCT name FROM users",
	"SELECT DISTINCT ON (dept) dept, name FROM employees ORDER BY dept, salary DESC",
	"SELECT u.id, o.total FROM users u JOIN orders o ON o.user_id = u.id",
	"SELECT * FROM a LEFT JOIN b ON a.id = b.id RIGHT JOIN c USING (id) FULL JOIN d ON true",
	"SELECT * FROM a CROSS JOIN b NATURAL JOIN c",
	"SELECT * FROM (SELECT id FROM t) sub",
	"SELECT * FROM generate_series(1, 10) AS g(n)",
	"SELECT count(*), sum(x) FILTER (WHERE x > 0) FROM t GROUP BY y HAVING count(*) > 1",
	"SELECT rank() OVER (PARTITION BY dept ORDER BY salary DESC) FROM employees",
	"SELECT sum(x) OVER w FROM t WINDOW w AS (ORDER BY y ROWS BETWEEN 1 PRECEDING AND CURRENT ROW)",
	"SELECT * FROM t ORDER BY a ASC NULLS FIRST, b DESC NULLS LAST LIMIT 10 OFFSET 5",
	"SELECT * FROM t FOR UPDATE SKIP LOCKED",
	"SELECT * FROM t FOR SHARE NOWAIT",
	"SELECT a FROM t UNION SELECT a FROM u",
	"SELECT a FROM t UNION ALL SELECT a FROM u INTERSECT SELECT a FROM v EXCEPT SELECT a FROM w",
	"WITH x AS (SELECT 1 AS n) SELECT * FROM x",
	"WITH RECURSIVE tree(id) AS (SELECT id FROM nodes WHERE parent IS NULL UNION ALL SELECT n.id FROM nodes n JOIN tree ON n.parent = tree.id) SELECT * FROM tree",
	"SELECT EXISTS (SELECT 1 FROM t), x IN (1, 2, 3), y = ANY (SELECT z FROM u) FROM v",
	"SELECT a, b FROM t GROUP BY GROUPING SETS ((a), (b), ())",
	"SELECT a, b FROM t GROUP BY ROLLUP (a, b)",
	"SELECT a, b FROM t GROUP BY CUBE (a, b)",
	"VALUES (1, 'one'), (2, 'two')",
	"SELECT * FROM ROWS FROM (f(1), g(2)) AS x(a, b)",

	// JSON expressions
	"SELECT JSON_OBJECT('a': 1, 'b': 2)",
	"SELECT JSON_ARRAY(1, 2, 3)",
	"SELECT JSON('{\"a\": 1}')",
	"SELECT JSON_SCALAR(1)",
	"SELECT JSON_SERIALIZE('{}')",
	"SELECT x IS JSON OBJECT FROM t",
	"SELECT JSON_OBJECTAGG(k: v), JSON_ARRAYAGG(x) FROM t",

	// DML
	"INSERT INTO users (name) VALUES ('test')",
	"INSERT INTO users (name, age) VALUES ('a', 1), ('b', 2) RETURNING id",
	"INSERT INTO t SELECT * FROM u",
	"INSERT INTO t DEFAULT VALUES",
	"INSERT INTO t (id, v) VALUES (1, 'x') ON CONFLICT (id) DO UPDATE SET v = excluded.v",
	"INSERT INTO t (id) VALUES (1) ON CONFLICT DO NOTHING",
	"UPDATE users SET name = 'bob' WHERE id = 1",
	"UPDATE t SET (a, b) = (SELECT x, y FROM u WHERE u.id = t.id)",
	"UPDATE t SET x = DEFAULT",
	"DELETE FROM users WHERE id = 1",
	"DELETE FROM t USING u WHERE t.id = u.id RETURNING t.*",
	"MERGE INTO target t USING source s ON t.id = s.id WHEN MATCHED THEN UPDATE SET v = s.v WHEN NOT MATCHED THEN INSERT (id, v) VALUES (s.id, s.v)",
	"MERGE INTO t USING s ON t.id = s.id WHEN MATCHED THEN DELETE",

	// DDL: tables
	"CREATE TABLE t (id serial PRIMARY KEY, name text NOT NULL, age int DEFAULT 0)",
	"CREATE TEMPORARY TABLE tmp (x int) ON COMMIT DROP",
	"CREATE UNLOGGED TABLE ul (x int)",
	"CREATE TABLE IF NOT EXISTS t (x int)",
	"CREATE TABLE orders (id int, user_id int REFERENCES users (id) ON DELETE CASCADE, UNIQUE (id, user_id))",
	"CREATE TABLE c (CHECK (x > 0), y int CONSTRAINT pos CHECK (y > 0))",
	"CREATE TABLE part (id int, created date) PARTITION BY RANGE (created)",
	"CREATE TABLE part_2024 PARTITION OF part FOR VALUES FROM ('2024-01-01') TO ('2025-01-01')",
	"CREATE TABLE hash_p PARTITION OF part FOR VALUES WITH (MODULUS 4, REMAINDER 0)",
	"CREATE TABLE list_p PARTITION OF part FOR VALUES IN (1, 2, 3)",
	"CREATE TABLE inh (extra text) INHERITS (base)",
	"ALTER TABLE t ADD COLUMN email text",
	"ALTER TABLE t DROP COLUMN email CASCADE",
	"ALTER TABLE t ALTER COLUMN x SET DEFAULT 5",
	"ALTER TABLE t ALTER COLUMN x TYPE bigint",
	"ALTER TABLE t ADD CONSTRAINT uq UNIQUE (a, b)",
	"ALTER TABLE t RENAME COLUMN a TO b",
	"ALTER TABLE t RENAME TO t2",
	"ALTER TABLE t OWNER TO admin",
	"DROP TABLE t",
	"DROP TABLE IF EXISTS t, u CASCADE",
	"TRUNCATE t, u RESTART IDENTITY CASCADE",

	// DDL: indexes, views, schemas
	"CREATE INDEX idx ON t (a, b DESC NULLS LAST)",
	"CREATE UNIQUE INDEX CONCURRENTLY uidx ON t USING btree (lower(name)) WHERE active",
	"DROP INDEX idx",
	"CREATE VIEW v AS SELECT * FROM t",
	"CREATE OR REPLACE VIEW v AS SELECT id FROM t WITH CHECK OPTION",
	"CREATE MATERIALIZED VIEW mv AS SELECT * FROM t WITH NO DATA",
	"REFRESH MATERIALIZED VIEW CONCURRENTLY mv",
	"CREATE SCHEMA app AUTHORIZATION owner_role",

	// DDL: functions, sequences, triggers, rules, domains, types
	"CREATE FUNCTION add(a int, b int) RETURNS int AS 'SELECT a + b' LANGUAGE sql",
	"CREATE OR REPLACE FUNCTION f() RETURNS trigger AS 'dummy' LANGUAGE plpgsql",
	"ALTER FUNCTION add(int, int) STRICT",
	"CREATE SEQUENCE seq START 100 INCREMENT 5",
	"ALTER SEQUENCE seq RESTART WITH 1",
	"CREATE TRIGGER trg BEFORE INSERT OR UPDATE ON t FOR EACH ROW EXECUTE FUNCTION f()",
	"CREATE TRIGGER trg AFTER UPDATE ON t REFERENCING OLD TABLE AS old_rows FOR EACH STATEMENT EXECUTE FUNCTION f()",
	"CREATE RULE r AS ON DELETE TO t DO INSTEAD NOTHING",
	"CREATE DOMAIN posint AS int CHECK (VALUE > 0)",
	"CREATE TYPE point3d AS (x float8, y float8, z float8)",
	"CREATE TYPE mood AS ENUM ('sad', 'ok', 'happy')",
	"CREATE TYPE floatrange AS RANGE (subtype = float8)",
	"ALTER TYPE mood ADD VALUE 'ecstatic' AFTER 'happy'",
	"CREATE TABLE t2 AS SELECT * FROM t",
	"CREATE EXTENSION IF NOT EXISTS hstore SCHEMA public",

	// DDL: replication
	"CREATE PUBLICATION pub FOR TABLE t, u",
	"CREATE PUBLICATION all_pub FOR ALL TABLES",
	"ALTER PUBLICATION pub ADD TABLE v",
	"CREATE SUBSCRIPTION sub CONNECTION 'host=example dbname=d' PUBLICATION pub",
	"ALTER SUBSCRIPTION sub DISABLE",

	// Utility
	"BEGIN",
	"BEGIN ISOLATION LEVEL SERIALIZABLE",
	"COMMIT",
	"ROLLBACK",
	"SAVEPOINT sp",
	"ROLLBACK TO SAVEPOINT sp",
	"SET search_path TO app, public",
	"SET LOCAL statement_timeout = '5s'",
	"SHOW search_path",
	"EXPLAIN (ANALYZE, BUFFERS) SELECT * FROM t",
	"COPY t (a, b) FROM STDIN WITH (FORMAT csv)",
	"COPY (SELECT * FROM t) TO STDOUT",
	"GRANT SELECT, INSERT ON t TO role1, role2 WITH GRANT OPTION",
	"REVOKE ALL ON t FROM PUBLIC",
	"GRANT admin TO alice",
	"LOCK TABLE t IN ACCESS EXCLUSIVE MODE NOWAIT",
	"VACUUM (FULL, ANALYZE) t (a, b)",
	"ANALYZE t",
	"PREPARE q (int) AS SELECT * FROM t WHERE id = $1",
	"EXECUTE q (42)",
	"DEALLOCATE q",
	"DEALLOCATE ALL",
	"NOTIFY channel, 'payload'",
	"LISTEN channel",
	"UNLISTEN channel",
	"UNLISTEN *",
	"FETCH FORWARD 5 FROM cur",
	"CLOSE cur",
	"DISCARD ALL",
	"CHECKPOINT",
	"CALL proc(1, 2)",
	"DO $$ BEGIN NULL; END $$",
}

// TestParse_MatchesRecursive pins the two readers to each other: for
// every corpus entry they must produce structurally identical trees.
func TestParse_MatchesRecursive(t *testing.T) {
	ctx := context.Background()
	for _, sql := range sqlCorpus {
		t.Run(sql, func(t *testing.T) {
			iterResult, err := Parse(ctx, sql)
			require.NoError(t, err, "iterative parse")

			recResult, err := ParseRecursive(ctx, sql)
			require.NoError(t, err, "recursive parse")

			require.Equal(t, recResult.Stmts, iterResult.Stmts)
			require.Equal(t, recResult.Version, iterResult.Version)
		})
	}
}

// TestParseRecursive_DeepChain keeps the recursive reader honest on a
// depth the differential corpus never reaches. Kept well below the
// iterative path's test depth since this one consumes goroutine stack.
func TestParseRecursive_DeepChain(t *testing.T) {
	sql := "SELECT " + repeatNot(500) + "true"
	iterResult, err := Parse(context.Background(), sql)
	require.NoError(t, err)
	recResult, err := ParseRecursive(context.Background(), sql)
	require.NoError(t, err)
	require.Equal(t, recResult.Stmts, iterResult.Stmts)
}

func repeatNot(n int) string {
	b := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		b = append(b, "NOT "...)
	}
	return string(b)
}
