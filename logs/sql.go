package logs

const createGameTable = `
CREATE TABLE IF NOT EXISTS games (
  id varchar primary key,
  time datetime not null,
  size int not null,
  players int not null,
  bots varchar not null,
  winner int not null,
  ticks int not null,
  scores varchar not null
)`

const createDecisionTable = `
CREATE TABLE IF NOT EXISTS decisions (
  game_id varchar not null,
  tick int not null,
  seat int not null,
  move varchar not null,
  reason varchar not null,
  elapsed_us int not null
)`

// Wall placements are the moves written with three fields.
const createSeatView = `
CREATE VIEW IF NOT EXISTS seat_decisions (
  game_id, seat, decisions, walls, mean_us
) AS
SELECT game_id, seat, count(*),
       sum(CASE WHEN move LIKE '% % %' THEN 1 ELSE 0 END),
       avg(elapsed_us)
  FROM decisions
 GROUP BY game_id, seat
`

const insertGame = `
INSERT INTO games (id, time, size, players, bots, winner, ticks, scores)
VALUES (:id, :time, :size, :players, :bots, :winner, :ticks, :scores)
`

const insertDecision = `
INSERT INTO decisions (game_id, tick, seat, move, reason, elapsed_us)
VALUES (:game_id, :tick, :seat, :move, :reason, :elapsed_us)
`

const selectGames = `SELECT * FROM games ORDER BY time, id`

const selectDecisions = `
SELECT * FROM decisions WHERE game_id = ? ORDER BY tick, seat
`
