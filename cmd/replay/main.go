package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderbook/internal/common"
	"orderbook/internal/engine"
	"orderbook/internal/sequencer"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Asset int

const (
	USD Asset = iota
	EUR
	BTC
	ETH
)

var assetNames = map[Asset]string{
	USD: "USD",
	EUR: "EUR",
	BTC: "BTC",
	ETH: "ETH",
}

func (a Asset) String() string {
	return assetNames[a]
}

func parseAsset(s string) (Asset, error) {
	for asset, name := range assetNames {
		if name == s {
			return asset, nil
		}
	}
	return 0, fmt.Errorf("unknown asset %q", s)
}

func main() {
	logLevel := flag.String("log-level", "info", "Log level: ['debug', 'info', 'warn', 'error']")
	pretty := flag.Bool("pretty", true, "Human readable console logs")
	queue := flag.Int("queue", sequencer.DefaultQueueSize, "Sequencer queue size")
	orderAssetStr := flag.String("order-asset", "BTC", "Asset being traded")
	priceAssetStr := flag.String("price-asset", "USD", "Asset prices are quoted in")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Println("Error: invalid -log-level.")
		flag.Usage()
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)
	if *pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	orderAsset, err := parseAsset(*orderAssetStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -order-asset")
	}
	priceAsset, err := parseAsset(*priceAssetStr)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -price-asset")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	book := engine.New(orderAsset, priceAsset, engine.WithLogger(log.Logger))
	seq := sequencer.New(ctx, book, sequencer.WithQueueSize(*queue))

	if err := replay(ctx, seq, scenario(orderAsset, priceAsset)); err != nil {
		log.Error().Err(err).Msg("replay aborted")
	}
	if err := seq.Stop(); err != nil {
		log.Error().Err(err).Msg("sequencer exited with error")
	}
}

// replay submits requests one after the other, logging the outcomes and the
// spread after each one.
func replay(ctx context.Context, seq *sequencer.Sequencer[Asset], requests []common.Request[Asset]) error {
	for i, req := range requests {
		results, err := seq.Submit(ctx, req)
		if err != nil {
			return fmt.Errorf("request %d: %w", i, err)
		}

		log.Info().
			Int("n", i).
			Stringer("request", req.GetType()).
			Interface("order", req).
			Msg("order")
		for _, res := range results {
			if res.IsOk() {
				log.Info().Stringer("event", res).Msg("processing")
			} else {
				log.Warn().Err(res.Err).Msg("processing")
			}
		}

		bid, ask, ok, err := seq.Spread(ctx)
		if err != nil {
			return fmt.Errorf("spread after request %d: %w", i, err)
		}
		if ok {
			log.Info().Stringer("bid", bid).Stringer("ask", ask).Msg("spread")
		} else {
			log.Info().Msg("spread not available")
		}
	}
	return nil
}

func scenario(orderAsset, priceAsset Asset) []common.Request[Asset] {
	d := decimal.RequireFromString
	now := time.Now
	return []common.Request[Asset]{
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Bid, d("0.98"), d("5.0"), now()),
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Ask, d("1.02"), d("1.0"), now()),
		common.NewAmendOrderRequest(1, orderAsset, priceAsset, common.Bid, d("0.99"), d("4.0"), now()),
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Bid, d("1.01"), d("0.4"), now()),
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Ask, d("1.03"), d("0.5"), now()),
		common.NewMarketOrderRequest(orderAsset, priceAsset, common.Bid, d("1.0"), now()),
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Ask, d("1.05"), d("0.5"), now()),
		common.NewCancelOrderRequest(4, orderAsset, priceAsset, common.Ask, now()),
		common.NewLimitOrderRequest(orderAsset, priceAsset, common.Bid, d("1.06"), d("0.6"), now()),
	}
}
