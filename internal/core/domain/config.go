package domain

import "time"

// Remote is a named push destination.
type Remote struct {
	Name    string
	Refspec string
}

// SyncConfig is the immutable configuration of the sync orchestrator.
// It replaces the constants the agent used to embed.
type SyncConfig struct {
	// SpreadsheetID identifies the roadmap spreadsheet.
	SpreadsheetID string

	// SheetName is the sheet (tab) to export.
	SheetName string

	// Delimiter separates fields in the exported sheet text.
	Delimiter rune

	// DocumentIDs lists the project documents to fetch.
	DocumentIDs []string

	// DocumentConcurrency bounds concurrent document fetches.
	DocumentConcurrency int

	// RepoPath is the root of the target repository working tree.
	RepoPath string

	// Targets lists the files holding generated regions, in update order.
	Targets []TargetFile

	// Remotes lists push destinations in push order.
	Remotes []Remote

	// CommitTrailer is appended as a final paragraph to commit messages.
	CommitTrailer string

	// Schedule configures periodic runs.
	Schedule Schedule
}

// Default values taken from the fund flow integration guide deployment.
const (
	DefaultSpreadsheetID       = "1w7XrLsYUBDIjig2NKNYLnVA1fozxwnA54z_3g4NZWT4"
	DefaultSheetName           = "Sheet1"
	DefaultDelimiter           = ','
	DefaultDocumentConcurrency = 4
	DefaultScheduleInterval    = 24 * time.Hour
)

// Default target logical names.
const (
	TargetIntegrationDetails = "integration_details"
	TargetRecommendationCard = "recommendation_card"
)

// Default generated-region patterns.
const (
	IntegrationDetailsPattern = `const GLOBAL_PAYOUTS_COUNTRIES = \[[^\]]*?(?P<region>\n\s*// Coming[^\]]*?)\]`
	RecommendationCardPattern = `const ROADMAP_COUNTRIES: Record<string, string> = \{(?P<region>[^}]*?)\}`
)

// DefaultSyncConfig returns the configuration the agent shipped with.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		SpreadsheetID: DefaultSpreadsheetID,
		SheetName:     DefaultSheetName,
		Delimiter:     DefaultDelimiter,
		DocumentIDs: []string{
			"project_S0xmk1G3XOS0TF", // Cross-border transfers
			"project_SrXJRd3qQZYLnx", // Global Payouts USDC
			"project_TTwR4WYRCy37Wa", // Connect Stablecoins
		},
		DocumentConcurrency: DefaultDocumentConcurrency,
		RepoPath:            ".",
		Targets: []TargetFile{
			{
				LogicalName: TargetIntegrationDetails,
				Path:        "components/integration-details.tsx",
				Pattern:     IntegrationDetailsPattern,
				Rendering:   RenderingArrayEntries,
			},
			{
				LogicalName: TargetRecommendationCard,
				Path:        "components/recommendation-card.tsx",
				Pattern:     RecommendationCardPattern,
				Rendering:   RenderingMapEntries,
			},
		},
		Remotes: []Remote{
			{Name: "stripe", Refspec: "main:master"},
			{Name: "origin", Refspec: "main"},
		},
		Schedule: Schedule{
			Enabled:  true,
			Interval: DefaultScheduleInterval,
		},
	}
}
