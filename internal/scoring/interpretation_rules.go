package scoring

import "faithai-profile/internal/domain"

// Fragmentos condicionales por dimension. Un fragmento "high" aplica con valor >= Tension.High,
// uno "low" con valor <= Tension.Low.
var highStrengths = map[domain.Dimension]string{
	domain.DimReligiosity:             "Un ancrage spirituel solide qui donne des repères stables.",
	domain.DimAIOpenness:              "Une aisance réelle avec les outils numériques.",
	domain.DimSacredBoundary:          "Une conscience claire de ce qui relève du sacré.",
	domain.DimEthicalConcern:          "Une sensibilité éthique développée.",
	domain.DimPsychologicalPerception: "Une réflexion approfondie sur la nature de l'IA.",
	domain.DimCommunityInfluence:      "Un lien fort avec votre communauté.",
	domain.DimFutureOrientation:       "Une capacité à vous projeter dans l'avenir.",
}

var lowBlindSpots = map[domain.Dimension]string{
	domain.DimReligiosity:             "Des ressources spirituelles peut-être sous-exploitées face aux questions de sens.",
	domain.DimAIOpenness:              "Une connaissance limitée des usages concrets de l'IA.",
	domain.DimSacredBoundary:          "Des frontières peu définies entre outil et pratique spirituelle.",
	domain.DimEthicalConcern:          "Des risques éthiques qui peuvent être sous-estimés.",
	domain.DimCommunityInfluence:      "Un discernement mené seul, sans l'appui d'autres regards.",
	domain.DimFutureOrientation:       "Une difficulté possible à anticiper les évolutions.",
	domain.DimPsychologicalPerception: "Une tendance à ne voir dans l'IA qu'un outil neutre.",
}

const (
	anthropomorphismThreshold = 4.2
	anthropomorphismBlindSpot = "Le risque d'attribuer à l'IA des qualités humaines qu'elle n'a pas."
	fallbackStrength          = "Une position nuancée qui évite les jugements tranchés."

	uniqueHighPercentile  = 85
	uniqueLowPercentile   = 15
	extremeHighPercentile = 90
	extremeLowPercentile  = 10

	maxStrengths     = 4
	minStrengths     = 2
	maxBlindSpots    = 3
	maxUniqueAspects = 3
)

type tensionRule struct {
	a, b        domain.Dimension
	aHigh       bool
	bHigh       bool
	description string
	suggestion  string
}

// tensionRules liste fixe de paires significatives, evaluada en este orden.
var tensionRules = []tensionRule{
	{
		a: domain.DimReligiosity, b: domain.DimAIOpenness, aHigh: true, bHigh: true,
		description: "Une foi très engagée cohabite avec une forte ouverture à l'IA.",
		suggestion:  "Identifiez les usages de l'IA que vous jugez compatibles avec votre pratique, et ceux qui ne le sont pas.",
	},
	{
		a: domain.DimSacredBoundary, b: domain.DimAIOpenness, aHigh: true, bHigh: true,
		description: "Vous protégez fermement le sacré tout en utilisant largement l'IA.",
		suggestion:  "Formulez explicitement où passe pour vous la frontière entre outil et espace sacré.",
	},
	{
		a: domain.DimEthicalConcern, b: domain.DimAIOpenness, aHigh: true, bHigh: true,
		description: "Vos préoccupations éthiques sont fortes alors que votre usage de l'IA l'est aussi.",
		suggestion:  "Choisissez un ou deux critères éthiques concrets pour évaluer les outils que vous utilisez.",
	},
	{
		a: domain.DimPsychologicalPerception, b: domain.DimSacredBoundary, aHigh: true, bHigh: false,
		description: "Vous prêtez à l'IA une dimension presque personnelle sans poser de limites au sacré.",
		suggestion:  "Interrogez ce que signifie pour vous une relation avec une machine dans la vie spirituelle.",
	},
	{
		a: domain.DimAIOpenness, b: domain.DimFutureOrientation, aHigh: false, bHigh: true,
		description: "Vous anticipez un avenir transformé par l'IA tout en l'utilisant très peu.",
		suggestion:  "Expérimentez un usage simple et encadré pour éprouver votre vision de l'avenir.",
	},
	{
		a: domain.DimReligiosity, b: domain.DimSacredBoundary, aHigh: true, bHigh: false,
		description: "Votre engagement religieux est fort mais vous posez peu de limites au sacré face à l'IA.",
		suggestion:  "Discutez avec votre communauté des pratiques qui devraient rester pleinement humaines.",
	},
}

type growthTemplate struct {
	potential string
	step      string
}

var growthTemplates = map[domain.Dimension]growthTemplate{
	domain.DimReligiosity: {
		potential: "Approfondir votre vie spirituelle pourrait offrir un cadre plus stable pour juger les usages de l'IA.",
		step:      "Réservez un temps régulier de réflexion ou de prière sur vos usages numériques.",
	},
	domain.DimAIOpenness: {
		potential: "Une meilleure connaissance de l'IA permettrait un discernement fondé sur l'expérience.",
		step:      "Testez un outil d'IA sur une tâche simple et non spirituelle, puis faites-en le bilan.",
	},
	domain.DimSacredBoundary: {
		potential: "Clarifier ce qui relève du sacré aiderait à poser des choix cohérents.",
		step:      "Listez trois pratiques que vous ne souhaitez jamais confier à une machine.",
	},
	domain.DimEthicalConcern: {
		potential: "Renforcer votre vigilance éthique protégerait vos usages des dérives.",
		step:      "Informez-vous sur la manière dont un outil que vous utilisez traite vos données.",
	},
	domain.DimPsychologicalPerception: {
		potential: "Réfléchir à ce que l'IA imite de l'humain enrichirait votre regard.",
		step:      "Notez ce que vous ressentez lors d'un échange avec un assistant conversationnel.",
	},
	domain.DimCommunityInfluence: {
		potential: "Partager vos questions avec d'autres élargirait votre discernement.",
		step:      "Proposez un temps d'échange sur l'IA dans votre communauté ou votre groupe.",
	},
	domain.DimFutureOrientation: {
		potential: "Vous projeter davantage aiderait à préparer les changements plutôt qu'à les subir.",
		step:      "Imaginez concrètement votre communauté dans dix ans et ce que l'IA y changerait.",
	},
}
