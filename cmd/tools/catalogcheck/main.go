// Command catalogcheck validates a catalog file and prints the listing or a
// single book with its recommendations, exactly as the server would select them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/z-bookstore/backend/internal/config"
	"github.com/zhouzirui/z-bookstore/backend/internal/logging"
	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
	"github.com/zhouzirui/z-bookstore/backend/internal/view"
)

func main() {
	logging.Init(logging.Config{Level: "warn", Format: "console"})
	logger := logging.WithComponent("catalogcheck")

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	dataPath := flag.String("data", cfg.Catalog.DataPath, "catalog JSON file (default: embedded dataset)")
	id := flag.String("id", "", "show this book and its recommendations instead of the listing")
	limit := flag.Int("limit", cfg.Catalog.RecommendLimit, "number of recommendations")
	timeout := flag.Duration("timeout", 10*time.Second, "overall timeout")
	flag.Parse()

	var source book.Source = book.EmbeddedSource()
	if *dataPath != "" {
		source = book.FileSource{Path: *dataPath}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	svc := catalog.NewService(book.NewRepository(source), *limit)
	if err := run(ctx, os.Stdout, svc, *id); err != nil {
		logger.Error().Err(err).Str("source", source.Name()).Msg("catalog check failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, svc *catalog.Service, id string) error {
	if id == "" {
		books, err := svc.List(ctx)
		if err != nil {
			return err
		}
		for _, b := range books {
			printBook(out, "", b)
		}
		fmt.Fprintf(out, "%d books\n", len(books))
		return nil
	}

	detail, ok, err := svc.Detail(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("book %q not found", id)
	}

	printBook(out, "", detail.Book)
	if detail.Book.Description != "" {
		fmt.Fprintf(out, "    %s\n", detail.Book.Description)
	}
	fmt.Fprintf(out, "recommended (%d):\n", len(detail.Recommendations))
	for _, b := range detail.Recommendations {
		printBook(out, "  ", b)
	}
	return nil
}

func printBook(out io.Writer, indent string, b book.Book) {
	fmt.Fprintf(out, "%s[%s] %s / %s %s\n", indent, b.ID, b.Title, b.Author, view.FormatPrice(b.Price))
}
