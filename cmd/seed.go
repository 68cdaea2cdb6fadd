/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/lingua/internal/entity"
	"github.com/eslsoft/lingua/internal/infrastructure/config"
	"github.com/eslsoft/lingua/internal/infrastructure/database"
	entdb "github.com/eslsoft/lingua/internal/infrastructure/database/ent"
	entbadge "github.com/eslsoft/lingua/internal/infrastructure/database/ent/badge"
	entirregularverb "github.com/eslsoft/lingua/internal/infrastructure/database/ent/irregularverb"
	entvocabcluster "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabcluster"
	entvocabpack "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabpack"
	entvocabsense "github.com/eslsoft/lingua/internal/infrastructure/database/ent/vocabsense"
	"github.com/eslsoft/lingua/pkg/grammar"
)

// seedCmd loads the starter content catalog: badge definitions, the flagship
// vocab pack, a few clusters with senses, and the irregular-verb table.
// Upserts by slug/base, so re-running is safe.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the content catalog (packs, clusters, badges, verbs)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		client, cleanup, err := database.NewEntClient(cfg)
		if err != nil {
			return fmt.Errorf("create ent client: %w", err)
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		if err := seedBadges(ctx, client); err != nil {
			return err
		}
		if err := seedPacks(ctx, client); err != nil {
			return err
		}
		if err := seedClusters(ctx, client); err != nil {
			return err
		}
		if err := seedSenses(ctx, client); err != nil {
			return err
		}
		if err := seedIrregularVerbs(ctx, client); err != nil {
			return err
		}
		log.Println("catalog seeded")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seedBadges(ctx context.Context, client *entdb.Client) error {
	badges := []struct {
		slug, name, description, icon string
	}{
		{
			slug:        entity.BadgePerfectFoundation,
			name:        "Perfect Foundation",
			description: "Completed the starter pack without a single mistake.",
			icon:        "🏅",
		},
	}
	for _, b := range badges {
		err := client.Badge.Create().
			SetSlug(b.slug).
			SetName(b.name).
			SetDescription(b.description).
			SetIcon(b.icon).
			OnConflictColumns(entbadge.FieldSlug).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed badge %s: %w", b.slug, err)
		}
	}
	return nil
}

func seedPacks(ctx context.Context, client *entdb.Client) error {
	packs := []struct {
		slug, name, description string
		flagship                bool
	}{
		{
			slug:        entity.FlagshipPackSlug,
			name:        "Everyday Basics",
			description: "The words you need before anything else.",
			flagship:    true,
		},
		{slug: "shop", name: "Shopping", description: "Stores, prices and paying."},
		{slug: "travel", name: "Travel", description: "Getting around and getting by."},
		{slug: "food", name: "Food & Drink", description: "Ordering, cooking and tasting."},
	}
	for _, p := range packs {
		err := client.VocabPack.Create().
			SetSlug(p.slug).
			SetName(p.name).
			SetDescription(p.description).
			SetLanguage("en").
			SetFlagship(p.flagship).
			OnConflictColumns(entvocabpack.FieldSlug).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed pack %s: %w", p.slug, err)
		}
	}
	return nil
}

func seedClusters(ctx context.Context, client *entdb.Client) error {
	clusters := []struct {
		slug, name, topic string
	}{
		{slug: "colors", name: "Colors", topic: "description"},
		{slug: "numbers", name: "Numbers", topic: "counting"},
		{slug: "family", name: "Family", topic: "people"},
	}
	for _, c := range clusters {
		err := client.VocabCluster.Create().
			SetSlug(c.slug).
			SetName(c.name).
			SetTopic(c.topic).
			OnConflictColumns(entvocabcluster.FieldSlug).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed cluster %s: %w", c.slug, err)
		}
	}
	return nil
}

func seedSenses(ctx context.Context, client *entdb.Client) error {
	senses := []struct {
		word, translation, pack, cluster string
	}{
		{word: "hello", translation: "greeting", pack: entity.FlagshipPackSlug},
		{word: "thanks", translation: "gratitude", pack: entity.FlagshipPackSlug},
		{word: "water", translation: "drinkable liquid", pack: entity.FlagshipPackSlug},
		{word: "house", translation: "place to live", pack: entity.FlagshipPackSlug},
		{word: "store", translation: "place that sells goods", pack: "shop"},
		{word: "price", translation: "what it costs", pack: "shop"},
		{word: "ticket", translation: "proof of passage", pack: "travel"},
		{word: "bread", translation: "baked staple", pack: "food"},
		{word: "red", translation: "the color of fire", cluster: "colors"},
		{word: "blue", translation: "the color of the sky", cluster: "colors"},
		{word: "seven", translation: "the number 7", cluster: "numbers"},
		{word: "sister", translation: "female sibling", cluster: "family"},
	}
	for _, s := range senses {
		// Senses have no natural unique key, so guard the upsert by hand.
		exists, err := client.VocabSense.Query().
			Where(
				entvocabsense.WordEQ(s.word),
				entvocabsense.PackSlugEQ(s.pack),
				entvocabsense.ClusterSlugEQ(s.cluster),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check sense %s: %w", s.word, err)
		}
		if exists {
			continue
		}
		builder := client.VocabSense.Create().
			SetWord(s.word).
			SetTranslation(s.translation)
		if s.pack != "" {
			builder.SetPackSlug(s.pack)
		}
		if s.cluster != "" {
			builder.SetClusterSlug(s.cluster)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("seed sense %s: %w", s.word, err)
		}
	}
	return nil
}

func seedIrregularVerbs(ctx context.Context, client *entdb.Client) error {
	for _, forms := range grammar.NewVerbs().All() {
		err := client.IrregularVerb.Create().
			SetBase(forms.Base).
			SetPast(strings.Join(forms.Past, "/")).
			SetParticiple(strings.Join(forms.Participles, "/")).
			OnConflictColumns(entirregularverb.FieldBase).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed verb %s: %w", forms.Base, err)
		}
	}
	return nil
}
