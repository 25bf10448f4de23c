package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/handlers/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/orchestrators/search"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/redis"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
)

const (
	sourceSnapshot = "snapshot"
	sourceRedis    = "redis"
)

var (
	grpcPort            int
	catalogSource       string
	armorSnapshot       string
	weaponSnapshot      string
	skillSnapshot       string
	weaponSkillSnapshot string
	redisAddr           string
	requestIDs          string
	configPath          string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the skill simulator gRPC server backed by a snapshot or Redis catalog.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&catalogSource, "catalog-source", sourceSnapshot, "Catalog source: snapshot or redis")
	serverCmd.Flags().StringVar(&armorSnapshot, "armor-snapshot", "data/armor.json", "Armor snapshot file")
	serverCmd.Flags().StringVar(&weaponSnapshot, "weapon-snapshot", "data/weapons.json", "Weapon snapshot file, empty for none")
	serverCmd.Flags().StringVar(&skillSnapshot, "skill-snapshot", "", "Armor skill master file, empty for none")
	serverCmd.Flags().StringVar(&weaponSkillSnapshot, "weapon-skill-snapshot", "", "Weapon skill master file, empty for none")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address for the redis catalog source")
	serverCmd.Flags().StringVar(&requestIDs, "request-ids", "ulid", "Search ID format: ulid or uuid")
	serverCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML config file; flags given on the command line override it")
}

// catalogOptions selects and locates the catalog backing the server
type catalogOptions struct {
	Source              string `yaml:"source"`
	ArmorSnapshot       string `yaml:"armor_snapshot"`
	WeaponSnapshot      string `yaml:"weapon_snapshot"`
	SkillSnapshot       string `yaml:"skill_snapshot"`
	WeaponSkillSnapshot string `yaml:"weapon_skill_snapshot"`
	RedisAddr           string `yaml:"redis_addr"`
}

func (o catalogOptions) snapshotFiles() catalog.SnapshotFiles {
	return catalog.SnapshotFiles{
		Armor:        o.ArmorSnapshot,
		Weapons:      o.WeaponSnapshot,
		Skills:       o.SkillSnapshot,
		WeaponSkills: o.WeaponSkillSnapshot,
	}
}

// newCatalogRepository builds the catalog repository and a cleanup func for
// any connection it opened
func newCatalogRepository(ctx context.Context, opts catalogOptions) (catalog.Repository, func(), error) {
	switch opts.Source {
	case sourceSnapshot:
		repo, err := catalog.LoadSnapshotFiles(opts.snapshotFiles())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
		}
		return repo, func() {}, nil
	case sourceRedis:
		client, err := redis.NewClient(opts.RedisAddr, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		cleanup := func() {
			_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		if err := redis.Ping(ctx, client); err != nil {
			cleanup()
			return nil, nil, err
		}

		repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create redis catalog: %w", err)
		}
		return repo, cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", opts.Source)
	}
}

func newIDGenerator(format string) (idgen.Generator, error) {
	switch format {
	case "ulid":
		return idgen.NewULID("search"), nil
	case "uuid":
		return idgen.NewUUID("search"), nil
	default:
		return nil, fmt.Errorf("unknown request id format %q", format)
	}
}

// newSearchHandler wires a catalog into the search orchestrator and handler
func newSearchHandler(repo catalog.Repository, ids idgen.Generator) (*v1alpha1.Handler, error) {
	searchService, err := search.NewOrchestrator(&search.Config{
		CatalogRepo: repo,
		IDGenerator: ids,
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SearchService: searchService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create simulator handler: %w", err)
	}

	return handler, nil
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := resolveServerConfig(configPath, &serverConfig{
		Port:       grpcPort,
		RequestIDs: requestIDs,
		Catalog: catalogOptions{
			Source:              catalogSource,
			ArmorSnapshot:       armorSnapshot,
			WeaponSnapshot:      weaponSnapshot,
			SkillSnapshot:       skillSnapshot,
			WeaponSkillSnapshot: weaponSkillSnapshot,
			RedisAddr:           redisAddr,
		},
	}, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	repo, closeRepo, err := newCatalogRepository(ctx, cfg.Catalog)
	if err != nil {
		return err
	}
	defer closeRepo()

	ids, err := newIDGenerator(cfg.RequestIDs)
	if err != nil {
		return err
	}

	handler, err := newSearchHandler(repo, ids)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	skillsimv1alpha1.RegisterSimulatorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(skillsimv1alpha1.SimulatorService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (catalog: %s)...", cfg.Port, cfg.Catalog.Source)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
