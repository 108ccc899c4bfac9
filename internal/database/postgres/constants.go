package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"

	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"

	// PgErrorCodeCheckViolation is raised when a CHECK constraint rejects a row
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names referenced when translating errors
const (
	ConstraintCompetitionSlug = "competitions_slug_key"
	ConstraintInviteCode      = "leagues_invite_code_key"
)

// =============================================================================
// Competition SQL
// =============================================================================

const (
	competitionColumns = `id, name, slug, description, lock_date, allow_draws, created_at`

	SQLListCompetitions = `SELECT ` + competitionColumns + ` FROM competitions ORDER BY lock_date, id`

	SQLGetCompetition = `SELECT ` + competitionColumns + ` FROM competitions WHERE id = $1`

	SQLInsertCompetition = `
		INSERT INTO competitions (name, slug, description, lock_date, allow_draws)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	SQLUpdateCompetition = `
		UPDATE competitions
		SET name = $2, description = $3, lock_date = $4, allow_draws = $5
		WHERE id = $1
	`

	SQLDeleteCompetition = `DELETE FROM competitions WHERE id = $1`

	SQLSlugExists = `SELECT EXISTS (SELECT 1 FROM competitions WHERE slug = $1)`
)

// =============================================================================
// Team SQL
// =============================================================================

const (
	teamColumns = `id, name, logo_url, created_at`

	SQLGetTeam = `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	SQLListTeamsForCompetition = `
		SELECT t.id, t.name, t.logo_url, t.created_at
		FROM teams t
		WHERE EXISTS (
			SELECT 1 FROM games g
			WHERE g.competition_id = $1 AND (g.team_a_id = t.id OR g.team_b_id = t.id)
		)
		ORDER BY t.name, t.id
	`

	SQLInsertTeam = `INSERT INTO teams (name, logo_url) VALUES ($1, $2) RETURNING id, created_at`

	SQLUpdateTeamLogo = `UPDATE teams SET logo_url = $2 WHERE id = $1`

	SQLDeleteTeam = `DELETE FROM teams WHERE id = $1`
)

// =============================================================================
// Game SQL
// =============================================================================

const (
	gameColumns = `id, competition_id, team_a_id, team_b_id, start_time, stage, winning_team_id, is_draw`

	SQLGetGame = `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

	SQLListGames = `SELECT ` + gameColumns + ` FROM games WHERE competition_id = $1 ORDER BY start_time, id`

	SQLInsertGame = `
		INSERT INTO games (competition_id, team_a_id, team_b_id, start_time, stage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	SQLDeleteGame = `DELETE FROM games WHERE id = $1`

	// SQLSetGameResult writes both result columns at once so a winner and a draw never coexist
	SQLSetGameResult = `UPDATE games SET winning_team_id = $2, is_draw = $3 WHERE id = $1`

	SQLListGamesStartingBetween = `
		SELECT ` + gameColumns + `
		FROM games
		WHERE start_time > $1 AND start_time <= $2
		ORDER BY start_time, id
	`
)

// =============================================================================
// Prop SQL
// =============================================================================

const (
	propColumns = `id, competition_id, question, lock_date, correct_answer`

	SQLGetProp = `SELECT ` + propColumns + ` FROM prop_predictions WHERE id = $1`

	SQLListProps = `SELECT ` + propColumns + ` FROM prop_predictions WHERE competition_id = $1 ORDER BY lock_date, id`

	SQLInsertProp = `
		INSERT INTO prop_predictions (competition_id, question, lock_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	SQLDeleteProp = `DELETE FROM prop_predictions WHERE id = $1`

	SQLSetPropAnswer = `UPDATE prop_predictions SET correct_answer = $2 WHERE id = $1`

	SQLListPropsLockingBetween = `
		SELECT ` + propColumns + `
		FROM prop_predictions
		WHERE lock_date > $1 AND lock_date <= $2
		ORDER BY lock_date, id
	`
)

// =============================================================================
// Pick SQL
// =============================================================================

const (
	pickColumns = `id, participant_id, competition_id, league_id, game_id, prop_prediction_id, pick, created_at, updated_at`

	// Each upsert targets one of the partial unique indexes on user_picks.
	// xmax = 0 only for freshly inserted rows.
	pickUpsertReturning = ` DO UPDATE SET pick = EXCLUDED.pick, updated_at = NOW()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

	pickInsert = `
		INSERT INTO user_picks (participant_id, competition_id, league_id, game_id, prop_prediction_id, pick)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	SQLUpsertPublicGamePick = pickInsert + `
		ON CONFLICT (participant_id, game_id) WHERE league_id IS NULL AND game_id IS NOT NULL` + pickUpsertReturning

	SQLUpsertPublicPropPick = pickInsert + `
		ON CONFLICT (participant_id, prop_prediction_id) WHERE league_id IS NULL AND prop_prediction_id IS NOT NULL` + pickUpsertReturning

	SQLUpsertLeagueGamePick = pickInsert + `
		ON CONFLICT (participant_id, league_id, game_id) WHERE league_id IS NOT NULL AND game_id IS NOT NULL` + pickUpsertReturning

	SQLUpsertLeaguePropPick = pickInsert + `
		ON CONFLICT (participant_id, league_id, prop_prediction_id) WHERE league_id IS NOT NULL AND prop_prediction_id IS NOT NULL` + pickUpsertReturning

	// $3 NULL selects the public context, IS NOT DISTINCT FROM keeps NULL = NULL
	SQLListPicksForParticipant = `
		SELECT ` + pickColumns + `
		FROM user_picks
		WHERE participant_id = $1 AND competition_id = $2 AND league_id IS NOT DISTINCT FROM $3
		ORDER BY id
	`

	SQLListPicksInContext = `
		SELECT ` + pickColumns + `
		FROM user_picks
		WHERE competition_id = $1 AND league_id IS NOT DISTINCT FROM $2
		ORDER BY id
	`

	SQLListPublicParticipants = `
		SELECT DISTINCT participant_id
		FROM user_picks
		WHERE competition_id = $1 AND league_id IS NULL
		ORDER BY participant_id
	`
)

// =============================================================================
// League SQL
// =============================================================================

const (
	leagueColumns = `id, name, admin_id, competition_id, invite_code, created_at`

	SQLInsertLeague = `
		INSERT INTO leagues (id, name, admin_id, competition_id, invite_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	SQLGetLeague = `SELECT ` + leagueColumns + ` FROM leagues WHERE id = $1`

	SQLGetLeagueByInviteCode = `SELECT ` + leagueColumns + ` FROM leagues WHERE invite_code = $1`

	SQLListLeaguesForParticipant = `
		SELECT l.id, l.name, l.admin_id, l.competition_id, l.invite_code, l.created_at
		FROM leagues l
		JOIN league_members m ON m.league_id = l.id
		WHERE m.participant_id = $1
		ORDER BY l.created_at, l.id
	`

	SQLInsertLeagueMember = `
		INSERT INTO league_members (league_id, participant_id)
		VALUES ($1, $2)
		ON CONFLICT (league_id, participant_id) DO NOTHING
	`

	SQLDeleteLeagueMember = `DELETE FROM league_members WHERE league_id = $1 AND participant_id = $2`

	// Admin membership is implicit, the UNION covers rows created before the admin row existed
	SQLIsLeagueMember = `
		SELECT EXISTS (
			SELECT 1 FROM league_members WHERE league_id = $1 AND participant_id = $2
			UNION ALL
			SELECT 1 FROM leagues WHERE id = $1 AND admin_id = $2
		)
	`

	SQLListLeagueMemberIDs = `
		SELECT participant_id FROM league_members WHERE league_id = $1
		UNION
		SELECT admin_id FROM leagues WHERE id = $1
		ORDER BY 1
	`

	SQLListLeagueMembers = `
		SELECT m.participant_id, COALESCE(p.display_name, ''), m.participant_id = l.admin_id, m.joined_at
		FROM league_members m
		JOIN leagues l ON l.id = m.league_id
		LEFT JOIN profiles p ON p.id = m.participant_id
		WHERE m.league_id = $1
		ORDER BY m.joined_at, m.participant_id
	`
)

// =============================================================================
// Profile SQL
// =============================================================================

const (
	SQLUpsertProfile = `
		INSERT INTO profiles (id, display_name, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET display_name = EXCLUDED.display_name, updated_at = NOW()
		WHERE profiles.display_name IS DISTINCT FROM EXCLUDED.display_name
	`

	SQLGetDisplayNames = `SELECT id, display_name FROM profiles WHERE id = ANY($1::uuid[])`
)

// =============================================================================
// Error Messages
// =============================================================================

const (
	ErrMsgQueryFailed        = "query %s failed: %w"
	ErrMsgScanFailed         = "failed to scan %s: %w"
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed     = "failed to commit transaction: %w"
	ErrMsgInvalidPickSubject = "pick must reference exactly one game or prop"
)
