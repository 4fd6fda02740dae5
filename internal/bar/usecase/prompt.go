package usecase

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"

	"autonomous-barman/internal/catalog"
	"autonomous-barman/internal/intent"
	"autonomous-barman/internal/intent/command"
	"autonomous-barman/internal/model"
)

const persona = `
	Eres un barman profesional AI amable.
`

const baseRules = `
	**INSTRUCCIONES:**
	1. Sé conciso (max 200 chars).
	2. Si el usuario dice SOLO el nombre de un trago (ej: "Fanta"), asume que lo quiere: CONFIRMA que lo estás preparando.
	3. Si dice "Quiero un [trago]", pídele confirmación o dile "Escribe el nombre del trago para servirlo".
	4. Usa emojis 🍹.
	5. Solo ofreces los cócteles de la lista. Si piden otra cosa, sugiere uno parecido.
`

const examples = `
	**EJEMPLOS:**
	User: "Coca cola"
	Tu: "¡Entendido! Sirviendo Coca-Cola bien fría 🥤"

	User: "Hola"
	Tu: "¡Hola! ¿Qué te sirvo hoy? Tenemos Tinto de Verano, Fanta..."
`

const preparingNote = `
	**EL SISTEMA YA ESTÁ PREPARANDO EL TRAGO (detectado automáticamente): %s**
	- Di algo como: "¡Marchando un %s! 🚀" o "Preparando tu bebida..."
	- No vuelvas a pedir confirmación.
`

const unconfirmedNote = `
	**EL CLIENTE MENCIONÓ %s PERO NO LO CONFIRMÓ.**
	- NO digas que lo estás preparando. Pídele que escriba el nombre del trago para servirlo.
`

const commandRules = `
	**CÓMO SERVIR:**
	- Cuando el cliente confirme claramente UN trago de la lista, termina tu respuesta con este bloque, usando el ID exacto entre paréntesis:
	%s
	- Un solo bloque por respuesta. Si hay cualquier duda, pregunta y NO incluyas el bloque.
	- El cliente no ve el bloque; no lo menciones.
`

// promptParts holds the sections that do not change between requests.
type promptParts struct {
	head string
	tail string
}

func block(s string) string {
	return dedent.Dedent(strings.Trim(s, "\n"))
}

func (uc *implUseCase) buildPromptParts() promptParts {
	var head strings.Builder
	head.WriteString(block(persona))
	head.WriteString("\n**INGREDIENTES:**\n")
	for _, ch := range uc.reg.Channels() {
		fmt.Fprintf(&head, "- %s %s\n", catalog.IngredientEmoji[ch.Ingredient], label(ch.Ingredient))
	}

	head.WriteString("\n**CÓCTELES:**\n")
	for _, r := range uc.cat.All() {
		fmt.Fprintf(&head, "- **%s** (%s): %s. %s\n", r.Name, r.ID, r.Description, describeIngredients(r))
	}

	var tail strings.Builder
	tail.WriteString(block(baseRules))
	if uc.resolver.Strategy() == intent.StrategyCommand {
		tail.WriteString("\n")
		tail.WriteString(fmt.Sprintf(block(commandRules), command.Format("tinto_de_verano")))
	}
	tail.WriteString("\n")
	tail.WriteString(block(examples))

	return promptParts{head: head.String(), tail: tail.String()}
}

// systemPrompt assembles the instructions for one request. pre is the intent resolved
// from the user text before the model call, zero when resolution happens afterwards.
func (uc *implUseCase) systemPrompt(pre intent.Result) string {
	var sb strings.Builder
	sb.WriteString(uc.prompt.head)
	sb.WriteString("\n")
	sb.WriteString(uc.prompt.tail)

	if pre.RecipeID != "" {
		if r, ok := uc.cat.Get(pre.RecipeID); ok {
			switch pre.Kind {
			case intent.NamedConfirmed:
				sb.WriteString("\n")
				sb.WriteString(fmt.Sprintf(block(preparingNote), r.Name, r.Name))
			case intent.NamedUnconfirmed:
				sb.WriteString("\n")
				sb.WriteString(fmt.Sprintf(block(unconfirmedNote), r.Name))
			}
		}
	}

	return sb.String()
}

func describeIngredients(r model.Recipe) string {
	parts := make([]string, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		parts[i] = fmt.Sprintf("%s %g ml", label(ing.Ingredient), ing.ML)
	}
	return "Ingredientes: " + strings.Join(parts, ", ")
}

// label turns an ingredient key into words: vino_rosa_espumoso -> vino rosa espumoso.
func label(ingredient string) string {
	return strings.ReplaceAll(ingredient, "_", " ")
}
