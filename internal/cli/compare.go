package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fscmp/internal/collector"
	"github.com/vvka-141/fscmp/internal/config"
	"github.com/vvka-141/fscmp/internal/logging"
	"github.com/vvka-141/fscmp/internal/partition"
	"github.com/vvka-141/fscmp/internal/report"
	"github.com/vvka-141/fscmp/internal/rules"
	"github.com/vvka-141/fscmp/pkg/fscmp"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare file sets across two or more directories",
	Long: `Compare collects the file names in each directory, normalizes them by
stripping the final extension and applying the substitution rules in order,
and groups the resulting names by exactly which directories contain them.

Rules are declared as ordered --match/--replace pairs: the first --match pairs
with the first --replace, and so on. Every --match requires a --replace.
Rules apply sequentially; each rule rewrites the output of the previous one.

A fscmp.yaml file in the working directory may declare default rules,
exclusion patterns, and the recursive flag. CLI rules append after config
rules; exclusion lists concatenate; --recursive ORs with the config value.
Extra exclusion patterns can come from $FSCMP_EXCLUDE (comma-separated),
typically via a .env file.

Examples:
  # Basic comparison of two directories
  fscmp compare --dir ./a --dir ./b

  # Treat underscores and dashes as equivalent
  fscmp compare --dir ./a --dir ./b --match "_" --replace "-"

  # Recursive comparison, ignoring temp paths
  fscmp compare --dir ./a --dir ./b --dir ./c --recursive --exclude "/tmp/"`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

type compareFlagValues struct {
	dirs      []string
	matches   []string
	replaces  []string
	exclude   []string
	recursive bool
}

var compareFlags compareFlagValues

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringArrayVar(&compareFlags.dirs, "dir", nil,
		"Directory to compare (specify at least 2 times)")
	compareCmd.Flags().StringArrayVar(&compareFlags.matches, "match", nil,
		"Substring to find in file names (pair with --replace)")
	compareCmd.Flags().StringArrayVar(&compareFlags.replaces, "replace", nil,
		"String to replace the matched substring (follows --match)")
	compareCmd.Flags().StringArrayVar(&compareFlags.exclude, "exclude", nil,
		"Exclude paths containing this substring (can be specified multiple times)")
	compareCmd.Flags().BoolVar(&compareFlags.recursive, "recursive", false,
		"Search subdirectories recursively")
}

func runCompare(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	// Configuration errors surface before any filesystem access.
	if len(compareFlags.dirs) < 2 {
		return fmt.Errorf("%w: at least 2 directories must be specified", fscmp.ErrInvalidConfig)
	}

	projectCfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w: %s: %v", fscmp.ErrInvalidConfig, config.ConfigFileName, err)
		}
		projectCfg = nil
	} else {
		logger.Verbose("Loaded defaults from %s", config.ConfigFileName)
	}

	ruleSet, excludes, recursive, err := resolveCompareOptions(projectCfg, compareFlags)
	if err != nil {
		return err
	}

	renderer := report.New(os.Stdout, report.ColorEnabled(os.Stdout))
	renderer.PrintConfig(compareFlags.dirs, ruleSet, excludes, recursive)
	renderer.Separator()

	coll := collector.New(collector.Options{
		Recursive: recursive,
		Rules:     ruleSet,
		Exclude:   excludes,
	})

	// Fail-fast: the first bad directory aborts the run, since a missing
	// input invalidates any set-membership interpretation.
	sets := fscmp.NewDirectorySets()
	for _, dir := range compareFlags.dirs {
		keys, err := coll.Collect(dir)
		if err != nil {
			logger.Error("%v", err)
			return err
		}
		sets.Add(dir, keys)
		renderer.PrintCollected(dir, len(keys))
	}
	renderer.Separator()

	result := partition.New().Partition(sets)
	renderer.PrintGroups(result, sets.Len())
	renderer.PrintSummary(result)
	return nil
}

// resolveCompareOptions layers config-file defaults under CLI flags and
// environment extras.
func resolveCompareOptions(projectCfg *config.ProjectConfig, flags compareFlagValues) (fscmp.RuleSet, []string, bool, error) {
	var ruleSet fscmp.RuleSet
	var excludes []string
	recursive := flags.recursive

	if projectCfg != nil {
		for _, rc := range projectCfg.Rules {
			ruleSet = append(ruleSet, fscmp.Rule{Match: rc.Match, Replace: rc.Replace})
		}
		if err := rules.Validate(ruleSet); err != nil {
			return nil, nil, false, fmt.Errorf("%s: %w", config.ConfigFileName, err)
		}
		excludes = append(excludes, projectCfg.Exclude...)
		recursive = recursive || projectCfg.Recursive
	}

	cliRules, err := rules.Pair(flags.matches, flags.replaces)
	if err != nil {
		return nil, nil, false, err
	}
	ruleSet = append(ruleSet, cliRules...)

	excludes = append(excludes, flags.exclude...)
	if extra := os.Getenv(fscmp.EnvExtraExcludes); extra != "" {
		for _, pattern := range strings.Split(extra, ",") {
			if pattern = strings.TrimSpace(pattern); pattern != "" {
				excludes = append(excludes, pattern)
			}
		}
	}

	return ruleSet, excludes, recursive, nil
}
