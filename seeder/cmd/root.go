package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bytebite/catalog"
	"bytebite/config"
	"bytebite/mealapi"
	"bytebite/seeder/internal/seed"

	"github.com/jaswdr/faker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Loads the demo restaurants and meals into the meal service",
	Long: `seeder registers every catalog restaurant and meal for the selected delivery
areas through the meal service API, optionally adding generated meals per area.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.SetupLogger("seeder", viper.GetString("log-format"), viper.GetString("log-level"))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, cmd, nil)
	},
}

func init() {
	rootCmd.Flags().String("api-url", "http://localhost:8081/api", "Base URL of the meal service API")
	rootCmd.Flags().String("areas", strings.Join(catalog.Areas, ","), "Comma separated delivery areas to seed")
	rootCmd.Flags().Int("fake", 0, "Generated meals to add per area")
	rootCmd.Flags().Int64("seed", 0, "Random seed for generated meals (0 picks one)")
	rootCmd.Flags().Bool("dry-run", false, "Print the plan without calling the API")
	rootCmd.Flags().Duration("timeout", 10*time.Second, "Per request timeout")
	rootCmd.Flags().String("log-format", "console", "Log format: console or json")
	rootCmd.Flags().String("log-level", "info", "Log level")

	viper.SetEnvPrefix("seeder")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.BindPFlags(rootCmd.Flags())
}

// run executes a seeding pass. reg overrides the HTTP client when non-nil.
func run(ctx context.Context, cmd *cobra.Command, reg seed.Registrar) error {
	areas := catalog.ParseAreas(viper.GetString("areas"))
	if len(areas) == 0 {
		return fmt.Errorf("no known delivery areas in %q", viper.GetString("areas"))
	}

	seedValue := viper.GetInt64("seed")
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	plan := seed.BuildPlan(areas, viper.GetInt("fake"), faker.NewWithSeed(rand.NewSource(seedValue)))

	out := cmd.OutOrStdout()
	if viper.GetBool("dry-run") {
		for _, r := range plan.Restaurants {
			fmt.Fprintf(out, "restaurant\t%s\t%s\n", r.DeliveryArea, r.RestaurantName)
		}
		for _, m := range plan.Meals {
			fmt.Fprintf(out, "meal\t%s\t%s\t%s\t%.2f\t%d\n", m.Area, m.RestaurantName, m.DishName, m.Price, m.PrepTime)
		}
		return nil
	}

	if reg == nil {
		apiURL := strings.TrimRight(viper.GetString("api-url"), "/")
		reg = mealapi.NewClient(apiURL, &http.Client{Timeout: viper.GetDuration("timeout")})
	}

	log.Info().Strs("areas", areas).Int("steps", plan.Steps()).Msg("seeding meal service")
	report, err := seed.Run(ctx, reg, plan, seed.NewProgressBar(plan.Steps(), cmd.ErrOrStderr()))
	log.Info().
		Int("restaurants", report.Restaurants).
		Int("meals", report.Meals).
		Int("failed", report.Failed).
		Msg("seeding finished")
	if err != nil {
		return err
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d registrations failed", report.Failed)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
