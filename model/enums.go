package model

import (
	"fmt"
	"math/bits"
	"strings"
)

// Flags is a set of categories where every bit enables one category.
type Flags interface {
	~uint32
}

// Union returns the set containing every category of flags.
func Union[T Flags](flags ...T) T {
	var result T
	for _, f := range flags {
		result |= f
	}
	return result
}

// Has reports whether every bit of want is set in set.
func Has[T Flags](set, want T) bool {
	return set&want == want
}

// Count returns the number of categories enabled in set.
func Count[T Flags](set T) int {
	return bits.OnesCount32(uint32(set))
}

type GameMode uint32

//goland:noinspection ALL
const (
	GameModeStd GameMode = 1 << iota
	GameModeTaiko
	GameModeCtb
	GameModeMania

	GameModeAll = GameModeStd | GameModeTaiko | GameModeCtb | GameModeMania
)

type Class uint32

//goland:noinspection ALL
const (
	ClassRankedApproved Class = 1 << iota
	ClassQualified
	ClassLoved
	ClassPendingWIP
	ClassGraveyard

	ClassAll = ClassRankedApproved | ClassQualified | ClassLoved | ClassPendingWIP | ClassGraveyard
)

type Genre uint32

//goland:noinspection ALL
const (
	GenreAny Genre = 1 << iota
	GenreUnspecified
	GenreVideoGame
	GenreAnime
	GenreRock
	GenrePop
	GenreOther
	GenreNovelty
	GenreHipHop
	GenreElectronic

	GenreAll = GenreAny | GenreUnspecified | GenreVideoGame | GenreAnime | GenreRock | GenrePop |
		GenreOther | GenreNovelty | GenreHipHop | GenreElectronic
)

type Language uint32

//goland:noinspection ALL
const (
	LangAny Language = 1 << iota
	LangOther
	LangEnglish
	LangJapanese
	LangChinese
	LangInstrumental
	LangKorean
	LangFrench
	LangGerman
	LangSwedish
	LangSpanish
	LangItalian

	LangAll = LangAny | LangOther | LangEnglish | LangJapanese | LangChinese | LangInstrumental |
		LangKorean | LangFrench | LangGerman | LangSwedish | LangSpanish | LangItalian
)

// SubType selects which text fields the keyword is matched against.
type SubType uint32

//goland:noinspection ALL
const (
	SubTypeTitle SubType = 1 << iota
	SubTypeArtist
	SubTypeCreator
	SubTypeVersion
	SubTypeTags
	SubTypeSource

	SubTypeAll = SubTypeTitle | SubTypeArtist | SubTypeCreator | SubTypeVersion | SubTypeTags | SubTypeSource
)

var gameModeNames = map[string]GameMode{
	"std": GameModeStd, "osu": GameModeStd, "taiko": GameModeTaiko,
	"ctb": GameModeCtb, "catch": GameModeCtb, "mania": GameModeMania,
	"all": GameModeAll,
}

var classNames = map[string]Class{
	"ranked": ClassRankedApproved, "approved": ClassRankedApproved, "qualified": ClassQualified,
	"loved": ClassLoved, "pending": ClassPendingWIP, "wip": ClassPendingWIP,
	"graveyard": ClassGraveyard, "all": ClassAll,
}

var genreNames = map[string]Genre{
	"any": GenreAny, "unspecified": GenreUnspecified, "video_game": GenreVideoGame,
	"anime": GenreAnime, "rock": GenreRock, "pop": GenrePop, "other": GenreOther,
	"novelty": GenreNovelty, "hiphop": GenreHipHop, "electronic": GenreElectronic,
	"all": GenreAll,
}

var languageNames = map[string]Language{
	"any": LangAny, "other": LangOther, "english": LangEnglish, "japanese": LangJapanese,
	"chinese": LangChinese, "instrumental": LangInstrumental, "korean": LangKorean,
	"french": LangFrench, "german": LangGerman, "swedish": LangSwedish,
	"spanish": LangSpanish, "italian": LangItalian, "all": LangAll,
}

var subTypeNames = map[string]SubType{
	"title": SubTypeTitle, "artist": SubTypeArtist, "creator": SubTypeCreator,
	"version": SubTypeVersion, "tags": SubTypeTags, "source": SubTypeSource,
	"all": SubTypeAll,
}

func parseFlags[T Flags](kind string, names map[string]T, s string) (T, error) {
	var result T
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		f, ok := names[name]
		if !ok {
			return 0, fmt.Errorf("unknown %s %q", kind, name)
		}
		result |= f
	}
	if result == 0 {
		return 0, fmt.Errorf("no %s specified", kind)
	}
	return result, nil
}

// ParseGameMode parses a comma separated list like "std,taiko".
func ParseGameMode(s string) (GameMode, error) { return parseFlags("game mode", gameModeNames, s) }

func ParseClass(s string) (Class, error) { return parseFlags("class", classNames, s) }

func ParseGenre(s string) (Genre, error) { return parseFlags("genre", genreNames, s) }

func ParseLanguage(s string) (Language, error) { return parseFlags("language", languageNames, s) }

func ParseSubType(s string) (SubType, error) { return parseFlags("sub type", subTypeNames, s) }

// RequestType selects which beatmap list is returned.
type RequestType int

//goland:noinspection ALL
const (
	RequestTypeHot RequestType = iota + 1
	RequestTypeNew
	RequestTypePacks
	RequestTypeSearch
)

var requestTypeNames = map[string]RequestType{
	"hot": RequestTypeHot, "new": RequestTypeNew, "packs": RequestTypePacks, "search": RequestTypeSearch,
}

func ParseRequestType(s string) (RequestType, error) {
	t, ok := requestTypeNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown request type %q", s)
	}
	return t, nil
}
