package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"configurator-backend/internal/app"
	"configurator-backend/internal/configurator"
)

// Консольная обвязка движка конфигуратора: загружает снимок каталога,
// прогоняет через сессию переданный выбор и печатает состояние опций
// и итог. Витрина и админка дергают движок точно так же, просто
// рисуют результат по-своему.

func main() {
	_ = godotenv.Load()

	// путь к снимку берём из env, флаг его перекрывает
	snapshotPath := os.Getenv("SNAPSHOT_PATH")

	flagSnapshot := flag.String("snapshot", "", "путь к JSON-снимку каталога (по умолчанию демо-каталог)")
	flagSelect := flag.String("select", "", "выбор вида 'Frame=frame_full,Wheels=wheels_road'")
	flag.Parse()

	if *flagSnapshot != "" {
		snapshotPath = *flagSnapshot
	}

	a, err := app.New(app.Config{SnapshotPath: snapshotPath})
	if err != nil {
		log.Fatalf("app: %v", err)
	}
	log.Printf("Catalog %q loaded: %d parts, %d options",
		a.Snapshot.Category.Name, len(a.Snapshot.Parts), len(a.Snapshot.Options))

	session := a.NewSession()

	// применяем выбор в заданном порядке; отказ по правилу — не фатал,
	// просто показываем причину, как это сделала бы витрина
	for _, pair := range splitPairs(*flagSelect) {
		partName, optionID := pair[0], pair[1]
		if err := session.Select(partName, optionID); err != nil {
			log.Printf("select %s=%s: %v", partName, optionID, err)
		}
	}

	// состояние опций по каждому шагу
	for _, part := range a.Index.Parts() {
		states, err := session.OptionStates(part.Name)
		if err != nil {
			log.Fatalf("option states: %v", err)
		}
		fmt.Printf("\n%d. %s\n", part.Step, part.Name)
		for _, st := range states {
			fmt.Printf("  %s %-18s %8s  %s\n",
				marker(st.Selected), st.Option.Name, st.EffectivePrice.String(), badges(st))
		}
	}

	fmt.Printf("\nTotal: %s\nComplete: %v\n", session.TotalPrice(), session.IsComplete())

	// итоговые строки — в том же виде, в каком они ушли бы в заказ
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(session.Summary()); err != nil {
		log.Fatalf("encode summary: %v", err)
	}
}

func marker(selected bool) string {
	if selected {
		return "*"
	}
	return " "
}

// badges — текстовый аналог бейджей витрины
func badges(st configurator.OptionState) string {
	var b []string
	if !st.Selectable {
		b = append(b, "недоступно: "+st.Reason)
	}
	if !st.InStock {
		b = append(b, "нет в наличии")
	} else if st.LowStock {
		b = append(b, "остаток на исходе")
	}
	return strings.Join(b, "; ")
}

func splitPairs(s string) [][2]string {
	var out [][2]string
	for _, chunk := range strings.Split(s, ",") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		kv := strings.SplitN(chunk, "=", 2)
		if len(kv) != 2 {
			log.Printf("skip bad select pair %q", chunk)
			continue
		}
		out = append(out, [2]string{strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])})
	}
	return out
}
