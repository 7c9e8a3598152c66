package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alecrj/atelier/internal/app"
	"github.com/alecrj/atelier/internal/coach"
	"github.com/alecrj/atelier/internal/curriculum"
	"github.com/alecrj/atelier/internal/llm"
	"github.com/alecrj/atelier/internal/progress"
	"github.com/alecrj/atelier/internal/store"
)

// runApp opens the store, restores the learner profile and starts the TUI.
func runApp(cmd *cobra.Command) error {
	st, tracker, fresh, err := openTracker(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	// Opening the app counts as showing up for the day.
	if _, err := tracker.CheckIn(cmd.Context()); err != nil {
		return fmt.Errorf("daily check-in: %w", err)
	}

	var coachSvc *coach.Service
	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err == nil {
		coachSvc = coach.NewService(provider, coach.DefaultConfig())
	} else {
		fmt.Fprintln(os.Stderr, "AI coach disabled: set ATELIER_LLM_PROVIDER or an API key to enable it")
	}

	return app.Run(app.Options{
		Tracker:     tracker,
		EventRepo:   st.EventRepo(),
		Coach:       coachSvc,
		ShowWelcome: fresh,
	})
}

// openTracker builds the full progress stack. fresh is true when no
// snapshot existed yet. The caller owns closing the returned store.
func openTracker(cmd *cobra.Command) (*store.Store, *progress.Tracker, bool, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, false, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, false, fmt.Errorf("open store: %w", err)
	}

	profile, seq, err := progress.Restore(cmd.Context(), st.SnapshotRepo())
	if err != nil {
		st.Close()
		return nil, nil, false, fmt.Errorf("restore profile: %w", err)
	}

	graph, err := curriculum.New(curriculum.Seed())
	if err != nil {
		st.Close()
		return nil, nil, false, fmt.Errorf("load curriculum: %w", err)
	}

	tracker, err := progress.New(graph, progress.Options{
		Profile:   profile,
		Sequence:  seq,
		Events:    st.EventRepo(),
		Snapshots: st.SnapshotRepo(),
	})
	if err != nil {
		st.Close()
		return nil, nil, false, fmt.Errorf("build tracker: %w", err)
	}

	return st, tracker, profile == nil, nil
}
