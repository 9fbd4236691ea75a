package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"main/internal/app"
	"main/internal/bus"
	"main/internal/engine"
	"main/internal/exec"
	"main/internal/fix"
	"main/internal/marketdata"
	"main/internal/obs"
	"main/internal/ops"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/logs"
	"github.com/yanun0323/pkg/sys"
)

const defaultSessionID = engine.SessionID("FIXT.1.1:SIM->COUNTER")

func main() {
	configPath := flag.String("config", "", "path to JSON config")
	envFile := flag.String("env-file", "", "optional .env overlay")
	serve := flag.Bool("serve", false, "keep running with synthetic quotes until shutdown")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("load env file: %v", err)
		}
	}

	if addr := os.Getenv("PYROSCOPE_SERVER_ADDRESS"); addr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "fix/executor",
			ServerAddress:   addr,
			Tags:            map[string]string{"env": "local"},
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() {
			_ = profiler.Stop()
		}()
	}

	var (
		loaded ops.Loaded
		err    error
	)
	if *configPath != "" {
		loaded, err = ops.Load(*configPath)
	} else {
		loaded, err = ops.Resolve(ops.FileConfig{})
	}
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := run(context.Background(), loaded, *serve); err != nil {
		log.Fatalf("executor: %v", err)
	}
}

func run(ctx context.Context, loaded ops.Loaded, serve bool) error {
	var programmatic marketdata.Provider
	table := marketdata.NewTable()
	if len(loaded.Quotes) > 0 {
		for symbol, q := range loaded.Quotes {
			table.SetQuote(symbol, q)
		}
		programmatic = table
	}
	provider := loaded.MarketData(programmatic)

	eng := engine.NewMemoryEngine()
	session := engine.NewMemorySession(engine.MemorySessionConfig{
		ID:               defaultSessionID,
		BeginString:      fix.BeginStringFIXT11,
		DefaultApplVerID: fix.ApplVerFIX50,
	})
	if err := eng.Register(session); err != nil {
		return err
	}

	metrics := obs.NewMetrics()
	a := app.New(app.Config{
		ValidOrderTypes:       loaded.ValidOrderTypes,
		AlwaysFillLimitOrders: loaded.AlwaysFillLimitOrders,
	}, provider, eng, exec.NewIDSource(), metrics)

	a.OnCreate(session.ID())
	a.OnLogon(session.ID())

	queue := bus.NewQueue(256)
	done := make(chan struct{})
	go func() {
		defer close(done)
		queue.Run(ctx, func(d bus.Delivery) {
			if d.Msg.Kind().IsAdmin() {
				a.FromAdmin(d.SessionID, d.Msg)
				return
			}
			if err := a.FromApp(d.SessionID, d.Msg); err != nil {
				logs.Warnf("session %s: %s rejected by core", d.SessionID, d.Msg.Kind())
			}
		})
	}()

	for _, msg := range scriptedMessages() {
		if err := queue.TryPublish(bus.Delivery{SessionID: session.ID(), Msg: msg}); err != nil {
			logs.Errorf("publish scripted message, err: %+v", err)
		}
	}

	if serve {
		generator, err := marketdata.NewGenerator(
			[]string{"EUR/USD", "GBP/USD"},
			decimal.RequireFromString("1.10"),
			decimal.RequireFromString("0.0002"),
			decimal.RequireFromString("0.0001"),
		)
		if err != nil {
			return err
		}
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-sys.Shutdown():
				queue.Close()
				<-done
				return summarize(metrics, session)
			case <-ctx.Done():
				queue.Close()
				<-done
				return summarize(metrics, session)
			case <-ticker.C:
				generator.Feed(table, 2)
			}
		}
	}

	queue.Close()
	<-done
	return summarize(metrics, session)
}

func summarize(metrics *obs.Metrics, session *engine.MemorySession) error {
	snap := metrics.Snapshot()
	logs.Infof("inbound=%v outbound=%v rejected=%v drops=%d", snap.InboundCounts, snap.OutboundCounts, snap.RejectCounts, snap.Drops)
	for i, msg := range session.Sent() {
		logs.Infof("sent[%d] %s", i, msg.Kind())
	}
	return nil
}

// scriptedMessages is a short demo tape: an executable buy limit, a
// non-executable sell limit, a trade capture report and a sequence reset.
func scriptedMessages() []fix.Message {
	return []fix.Message{
		fix.NewOrderSingle{
			ClOrdID:  "demo-1",
			Symbol:   "EUR/USD",
			Side:     fix.SideBuy,
			OrdType:  fix.OrdTypeLimit,
			OrderQty: decimal.NewFromInt(500),
			Price:    decimal.RequireFromString("10.00"),
		},
		fix.NewOrderSingle{
			ClOrdID:  "demo-2",
			Symbol:   "EUR/USD",
			Side:     fix.SideSell,
			OrdType:  fix.OrdTypeLimit,
			OrderQty: decimal.NewFromInt(200),
			Price:    decimal.RequireFromString("20.00"),
		},
		fix.TradeCaptureReport{
			TradeReportID: "tcr-1",
			ExecID:        "exec-9",
			ExecType:      fix.ExecTypeTrade,
			LastQty:       decimal.NewFromInt(100),
			Symbol:        "EUR/USD",
			SecurityID:    "EU0001",
		},
		fix.SequenceReset{NewSeqNo: 100},
	}
}
