package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/careerwiz/internal/assessment"
	"github.com/abhisek/careerwiz/internal/llm"
	"github.com/abhisek/careerwiz/internal/profile"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the assessment questions for a profile as JSON",
	Long: "Builds a profile from flags and prints the question set the wizard " +
		"would ask. Uses the configured content source.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p := profileFromFlags(cmd)
		if err := profile.Validate(p); err != nil {
			return fmt.Errorf("invalid profile: %w", err)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		var src assessment.Source = assessment.StaticSource{}
		if cfg.UseLLM() {
			st, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			s, _, err := buildCollaborators(ctx, cfg, st.EventRepo(), log)
			if err != nil {
				return err
			}
			src = s
		}

		ctx, cancel := contextWithTimeout(ctx, cfg.LLM.Timeout)
		defer cancel()
		qs, err := src.Questions(llm.WithRunID(ctx, "cli"), p)
		if err != nil {
			return fmt.Errorf("load questions: %w", err)
		}
		log.Info("printed questions", zap.Int("count", len(qs)))

		out, err := json.MarshalIndent(qs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode questions: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var profileFlags = map[profile.Field]string{
	profile.FieldQualification:  "qualification",
	profile.FieldKnownSkills:    "known-skills",
	profile.FieldSkillsToLearn:  "skills-to-learn",
	profile.FieldWorkExperience: "work-experience",
	profile.FieldHobbies:        "hobbies",
	profile.FieldJobStatus:      "job-status",
}

// profileFromFlags reads the profile flags into a draft.
func profileFromFlags(cmd *cobra.Command) profile.UserProfile {
	d := profile.NewDraft()
	for _, f := range profile.Fields() {
		v, _ := cmd.Flags().GetString(profileFlags[f])
		_ = d.Set(f, v)
	}
	return d.Profile()
}

func init() {
	fl := questionsCmd.Flags()
	fl.String(profileFlags[profile.FieldQualification], "bachelors", "highschool, bachelors, masters or phd")
	fl.String(profileFlags[profile.FieldKnownSkills], "Python", "Comma-separated known skills")
	fl.String(profileFlags[profile.FieldSkillsToLearn], "Go", "Comma-separated skills to learn")
	fl.String(profileFlags[profile.FieldWorkExperience], "", "Work experience")
	fl.String(profileFlags[profile.FieldHobbies], "", "Hobbies and interests")
	fl.String(profileFlags[profile.FieldJobStatus], "student", "student, fresher or employed")
}
