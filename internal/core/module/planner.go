package module

// PlanInput contains pre-fetched state for planning a generation run.
type PlanInput struct {
	MenuTableExists bool
	Guard           GuardContext
	DryRun          bool
}

// Plan lists which steps of a generation run have work to do. File artifacts
// are always rendered; the flags decide what touches the database and the
// routes file.
type Plan struct {
	Bootstrap      bool // create the menu table, its migration and model
	WriteMigration bool
	ApplySchema    bool
	InsertRoute    bool
	DryRun         bool
}

// PlanGeneration decides the steps of a run the guard allowed. Regenerating
// never re-applies an existing table, never writes a second migration for it
// and never registers a route twice.
func PlanGeneration(in PlanInput) Plan {
	return Plan{
		Bootstrap:      !in.MenuTableExists,
		WriteMigration: !in.Guard.MigrationExists,
		ApplySchema:    !in.Guard.TableExists,
		InsertRoute:    !in.Guard.RouteRegistered,
		DryRun:         in.DryRun,
	}
}
