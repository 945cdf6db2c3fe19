package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"github.com/xtrack/server/internal/auth"
	"github.com/xtrack/server/internal/benchmarks"
	"github.com/xtrack/server/internal/body"
	"github.com/xtrack/server/internal/cardio"
	"github.com/xtrack/server/internal/config"
	"github.com/xtrack/server/internal/db"
	"github.com/xtrack/server/internal/logging"
	"github.com/xtrack/server/internal/strength"
	"github.com/xtrack/server/pkg"
)

// seed creates a demo user and fills its training log with fake records,
// going through the same services the API uses so derived fields are set.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	email := flag.String("email", "", "demo user email, random if empty")
	password := flag.String("password", "xtrack-demo", "demo user password")
	days := flag.Int("days", 120, "how many days back to generate")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("XTRACK_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate: %s", err)
	}

	if *email == "" {
		*email = gofakeit.Email()
	}
	passwordHash, err := pkg.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}
	user, err := auth.NewUsersRepo(dbPool).Add(ctx, auth.User{
		Email:        *email,
		DisplayName:  gofakeit.Name(),
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Fatalf("add user: %s", err)
	}
	log.Infof("seeding user %s [%s]", user.Email, user.ID)

	s := &seeder{
		userID:     user.ID,
		benchmarks: benchmarks.NewService(benchmarks.NewRepo(dbPool), nil, nil),
		strength:   strength.NewService(strength.NewRepo(dbPool), nil, nil),
		cardio:     cardio.NewService(cardio.NewRepo(dbPool), nil, nil),
		body:       body.NewService(body.NewRepo(dbPool), nil, nil),
	}
	if err := s.run(ctx, *days); err != nil {
		log.Fatalf("seed: %s", err)
	}

	fmt.Printf("seeded %d records for %s / %s\n", s.written, user.Email, *password)
}

type seeder struct {
	userID     string
	benchmarks *benchmarks.Service
	strength   *strength.Service
	cardio     *cardio.Service
	body       *body.Service
	written    int
}

func (s *seeder) run(ctx context.Context, days int) error {
	catalog, err := s.benchmarks.Catalog(ctx)
	if err != nil {
		return fmt.Errorf("benchmarks catalog: %w", err)
	}

	now := time.Now()
	weight := gofakeit.Float64Range(70, 95)
	for i := days; i >= 0; i-- {
		date := pkg.DateOf(now.AddDate(0, 0, -i))

		// rest days
		if gofakeit.Number(1, 10) <= 3 {
			continue
		}

		if len(catalog) > 0 && gofakeit.Number(1, 4) == 1 {
			if err := s.benchmarkResult(ctx, catalog[gofakeit.Number(0, len(catalog)-1)], date); err != nil {
				return err
			}
		}
		if gofakeit.Bool() {
			if err := s.strengthRecord(ctx, date); err != nil {
				return err
			}
		}
		if gofakeit.Number(1, 3) == 1 {
			if err := s.cardioActivity(ctx, date); err != nil {
				return err
			}
		}
		if i%7 == 0 {
			weight += gofakeit.Float64Range(-0.8, 0.5)
			if err := s.bodyMetric(ctx, date, weight); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *seeder) benchmarkResult(ctx context.Context, b benchmarks.Benchmark, date pkg.Date) error {
	var result string
	switch b.Type {
	case benchmarks.TypeTime:
		secs := gofakeit.Number(150, 1800)
		result = fmt.Sprintf("%d:%02d", secs/60, secs%60)
	case benchmarks.TypeRounds:
		result = fmt.Sprintf("%d+%d", gofakeit.Number(8, 25), gofakeit.Number(0, 15))
	case benchmarks.TypeLoad:
		result = fmt.Sprintf("%d", gofakeit.Number(40, 160))
	default:
		result = fmt.Sprintf("%d", gofakeit.Number(20, 300))
	}

	_, err := s.benchmarks.AddResult(ctx, benchmarks.Result{
		UserID:      s.userID,
		BenchmarkID: b.ID,
		Result:      result,
		Scale:       benchmarks.Scale(gofakeit.RandomString([]string{"RX", "RX", "RX+", "Scaled"})),
		Date:        date,
	})
	if err != nil {
		return fmt.Errorf("add benchmark result %s: %w", b.Name, err)
	}
	s.written++
	return nil
}

func (s *seeder) strengthRecord(ctx context.Context, date pkg.Date) error {
	sets := gofakeit.Number(1, 5)
	_, err := s.strength.Add(ctx, strength.Record{
		UserID:   s.userID,
		Exercise: gofakeit.RandomString(strength.Exercises),
		Weight:   math.Round(gofakeit.Float64Range(40, 180)/2.5) * 2.5,
		Reps:     gofakeit.Number(1, 10),
		Sets:     &sets,
		Date:     date,
	})
	if err != nil {
		return fmt.Errorf("add strength record: %w", err)
	}
	s.written++
	return nil
}

func (s *seeder) cardioActivity(ctx context.Context, date pkg.Date) error {
	activityType := cardio.ActivityType(gofakeit.RandomString([]string{"run", "rower", "bike", "skierg", "echo_bike"}))
	duration := gofakeit.Number(10, 75)
	distance := math.Round(float64(duration)*gofakeit.Float64Range(0.12, 0.3)*10) / 10
	avgHR := gofakeit.Number(120, 165)

	_, err := s.cardio.Add(ctx, cardio.Activity{
		UserID:          s.userID,
		ActivityType:    activityType,
		Name:            gofakeit.Adjective() + " " + string(activityType),
		Date:            date,
		DurationMinutes: duration,
		DistanceKm:      &distance,
		AvgHeartRate:    &avgHR,
	})
	if err != nil {
		return fmt.Errorf("add cardio activity: %w", err)
	}
	s.written++
	return nil
}

func (s *seeder) bodyMetric(ctx context.Context, date pkg.Date, weight float64) error {
	weight = math.Round(weight*10) / 10
	restingHR := gofakeit.Number(48, 64)
	err := s.body.SaveMetric(ctx, body.Metric{
		UserID:    s.userID,
		Date:      date,
		Weight:    &weight,
		RestingHR: &restingHR,
	})
	if err != nil {
		return fmt.Errorf("save body metric: %w", err)
	}
	s.written++
	return nil
}
