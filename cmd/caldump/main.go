package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rmrobinson/transitcal/gtfs"
	"github.com/rmrobinson/transitcal/schedule"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	envVarDatasetPath = "DATASET_PATH"
	envVarDatasetURL  = "DATASET_URL"
	envVarDate        = "DATE"
)

func loadDataset(logger *zap.Logger) (*gtfs.Dataset, error) {
	dataset := gtfs.NewDataset(logger)

	if path := viper.GetString(envVarDatasetPath); len(path) > 0 {
		return dataset, dataset.LoadFromFSPath(context.Background(), path)
	}
	return dataset, dataset.LoadFromURL(context.Background(), viper.GetString(envVarDatasetURL))
}

func printResolution(res *schedule.DayResolution) {
	fmt.Printf("Service day %s (%d base, %d active, %d excluded):\n", res.DateKey, len(res.Base), len(res.Active), len(res.Excluded))
	for _, status := range res.Active {
		if status.IsException {
			fmt.Printf(" Service %s active (%s exception)\n", status.ServiceID, status.ExceptionType.String())
			continue
		}
		fmt.Printf(" Service %s active\n", status.ServiceID)
	}
	for _, status := range res.Excluded {
		fmt.Printf(" Service %s excluded (%s exception)\n", status.ServiceID, status.ExceptionType.String())
	}

	for _, trip := range res.Trips {
		if trip.Route != nil {
			fmt.Printf(" Trip %s (%s) on route %s\n", trip.ID, trip.Headsign, trip.Route.ShortName)
			continue
		}
		fmt.Printf(" Trip %s (%s) on unknown route %s\n", trip.ID, trip.Headsign, trip.RouteID)
	}
}

func printValidation(result *schedule.ValidationResult) {
	if result.Valid {
		fmt.Printf("Dataset valid (%d services, %d trips)\n", result.Stats.ServiceCount, result.Stats.TripCount)
		return
	}

	for _, issue := range result.Issues {
		fmt.Printf("%s %s: %s %v\n", issue.File, issue.Field, issue.Message, issue.Values)
	}
}

func main() {
	viper.SetEnvPrefix("TRANSITCAL")
	viper.BindEnv(envVarDatasetPath)
	viper.BindEnv(envVarDatasetURL)
	viper.BindEnv(envVarDate)

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	dataset, err := loadDataset(logger)
	if err != nil {
		logger.Fatal("error loading dataset",
			zap.Error(err),
		)
	}

	date := time.Now()
	if dateArg := viper.GetString(envVarDate); len(dateArg) > 0 {
		date, err = time.Parse(gtfs.DateFormat, dateArg)
		if err != nil {
			logger.Fatal("error parsing date",
				zap.String("date", dateArg),
				zap.Error(err),
			)
		}
	}

	engine := schedule.NewEngine(logger, dataset)

	printResolution(engine.ResolveDay(date))
	printValidation(engine.Validate())
}
