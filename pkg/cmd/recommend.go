package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/present"
	"coffeeQuizBot/pkg/quiz"
	"coffeeQuizBot/pkg/recommend"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type recommendOptions struct {
	Profile      string
	Answers      map[string]string
	SnapshotPath string
	Format       string
	Partial      bool
}

var recommendOpts = recommendOptions{}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommends a drink for the given quiz answers",
	Example: `  coffeequiz recommend --answer sweetness-level=لا --answer milk-amount=نعم \
    --answer coffee-strength=نعم --answer specialty=إثيوبي --answer temperature=لا
  coffeequiz recommend --snapshot answers.json --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := recommend.BuildRegistry()
		if err != nil {
			return err
		}

		return runRecommend(cmd.OutOrStdout(), registry, recommendOpts)
	},
}

func initRecommendCmd() {
	flags := recommendCmd.Flags()
	flags.StringVar(&recommendOpts.Profile, "profile", "", "engine profile, the configured default profile is used if empty")
	flags.StringToStringVar(&recommendOpts.Answers, "answer", nil, "quiz answer as question-key=value, can be repeated")
	flags.StringVar(&recommendOpts.SnapshotPath, "snapshot", "", "JSON file with the stored quiz answers")
	flags.StringVar(&recommendOpts.Format, "format", formatText, "output format: text or json")
	flags.BoolVar(&recommendOpts.Partial, "partial", false, "recommend even if some questions are unanswered")

	rootCmd.AddCommand(recommendCmd)
}

type recommendOutput struct {
	recommend.Result
	Presentation present.Presentation `json:"presentation"`
}

func runRecommend(out io.Writer, registry *recommend.Registry, opts recommendOptions) error {
	if opts.Format != formatText && opts.Format != formatJSON {
		return errors.Errorf("unsupported format %q, use %q or %q", opts.Format, formatText, formatJSON)
	}

	answers := recommend.Answers{}
	profileName := opts.Profile

	if opts.SnapshotPath != "" {
		snap, err := readSnapshot(opts.SnapshotPath)
		if err != nil {
			return err
		}

		for k, v := range snap.Answers {
			answers[k] = v
		}

		if profileName == "" {
			profileName = snap.Profile
		}
	}

	for k, v := range opts.Answers {
		answers[k] = v
	}

	engine := registry.Default()
	if profileName != "" {
		e, ok := registry.Get(profileName)
		if !ok {
			return errors.Errorf("unknown profile %q, available profiles: %v", profileName, registry.Names())
		}
		engine = e
	}

	profile := engine.Profile()

	if !opts.Partial {
		missing := quiz.MissingKeys(quiz.BuildQuestions(profile, quiz.DefaultPrompts()), answers)
		if len(missing) > 0 {
			return errors.Errorf("missing answers for %v, pass them with --answer or use --partial", missing)
		}
	}

	res := engine.Recommend(answers)
	resolver := present.NewTableResolver(profile.Questionnaire.YesToken)

	if opts.Format == formatJSON {
		tempAnswer := answers.Get(profile.Questionnaire.Key(catalog.FeatureTemperature))
		raw, err := json.MarshalIndent(recommendOutput{
			Result:       res,
			Presentation: resolver.Resolve(res.Prediction, tempAnswer),
		}, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = fmt.Fprintln(out, string(raw))

		return errors.WithStack(err)
	}

	rendering := quiz.RenderResult(res, answers, profile.Questionnaire, resolver)
	_, err := fmt.Fprintf(
		out,
		"%s\n\n%s, profile %s, policy %s, distance %.2f\n",
		rendering.Text,
		res.Item.String(),
		res.Profile,
		res.Policy,
		res.Distance,
	)

	return errors.WithStack(err)
}

// readSnapshot accepts the stored quiz snapshot or a plain key to answer object.
func readSnapshot(path string) (*quiz.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read snapshot %q", path)
	}

	snap := new(quiz.Snapshot)
	err = json.Unmarshal(raw, snap)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse snapshot %q", path)
	}

	if len(snap.Answers) > 0 {
		return snap, nil
	}

	plain := recommend.Answers{}
	err = json.Unmarshal(raw, &plain)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %q has neither answers nor plain answer values", path)
	}
	snap.Answers = plain

	return snap, nil
}
