package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ActionPrepare is the only action the bar acts on.
const ActionPrepare = "PREPARE"

var (
	// blockPattern finds a fenced block (optional json info string, any case) whose body starts with '{'.
	// The body runs up to the closing fence so that malformed JSON is still located and stripped.
	blockPattern = regexp.MustCompile("(?is)```[ \\t]*(?:json)?[ \\t]*\\r?\\n?\\s*(\\{.*?)\\s*```")

	// openBlockPattern is a fence that is never closed, as left by a reply cut at max tokens.
	openBlockPattern = regexp.MustCompile("(?s)```[^\\n]*\\n\\s*(\\{.*)\\z")

	// barePattern is a command object written without any fence.
	barePattern = regexp.MustCompile(`(?is)\{\s*"action"\s*:[^{}]*\}?`)
)

var (
	errUnterminated = errors.New("command block is not closed")
	errUnfenced     = errors.New("command block is not fenced")
)

var blankLines = regexp.MustCompile(`\n{3,}`)

// Payload is the body of a command block.
type Payload struct {
	Action     string `json:"action"`
	CocktailID string `json:"cocktail_id"`
}

// block is one located command block.
type block struct {
	raw     string
	payload Payload
	err     error
}

// extract locates every command block and returns them with the text they were removed from.
// Unclosed and unfenced blocks are removed too and always carry an error.
func extract(text string) ([]block, string) {
	var blocks []block

	for _, m := range blockPattern.FindAllStringSubmatch(text, -1) {
		b := block{raw: m[1]}
		b.err = json.Unmarshal([]byte(m[1]), &b.payload)
		if b.err == nil && (b.payload.Action == "" || b.payload.CocktailID == "") {
			b.err = fmt.Errorf("action and cocktail_id are required")
		}
		blocks = append(blocks, b)
	}
	text = blockPattern.ReplaceAllString(text, "")

	if loc := openBlockPattern.FindStringSubmatchIndex(text); loc != nil {
		blocks = append(blocks, block{raw: text[loc[2]:loc[3]], err: errUnterminated})
		text = text[:loc[0]]
	}

	for _, raw := range barePattern.FindAllString(text, -1) {
		blocks = append(blocks, block{raw: raw, err: errUnfenced})
	}
	text = barePattern.ReplaceAllString(text, "")

	if len(blocks) == 0 {
		return nil, strings.TrimSpace(text)
	}
	text = blankLines.ReplaceAllString(text, "\n\n")
	return blocks, strings.TrimSpace(text)
}

// Format renders the block the model is asked to emit for recipeID.
func Format(recipeID string) string {
	b, _ := json.Marshal(Payload{Action: ActionPrepare, CocktailID: recipeID})
	return "```json\n" + string(b) + "\n```"
}
