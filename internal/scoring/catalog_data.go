package scoring

import "faithai-profile/internal/domain"

func proto(rel, ai, sacred, ethic, psych, community, future domain.Range) domain.Prototype {
	return domain.Prototype{
		domain.DimReligiosity:             rel,
		domain.DimAIOpenness:              ai,
		domain.DimSacredBoundary:          sacred,
		domain.DimEthicalConcern:          ethic,
		domain.DimPsychologicalPerception: psych,
		domain.DimCommunityInfluence:      community,
		domain.DimFutureOrientation:       future,
	}
}

func rng(min, max, weight float64) domain.Range {
	return domain.Range{Min: min, Max: max, Weight: weight}
}

// DefaultCatalog devuelve el catalogo incorporado (8 perfiles, 2 sub-perfiles cada uno).
func DefaultCatalog() Catalog {
	return Catalog{
		Profiles:    defaultProfiles(),
		SubProfiles: defaultSubProfiles(),
		Narratives:  defaultNarratives(),
	}
}

func defaultProfiles() []domain.ProfileDefinition {
	return []domain.ProfileDefinition{
		{
			ID:               domain.ProfileGuardian,
			Title:            "Gardien du sacré",
			ShortDescription: "Une foi engagée qui protège fermement l'espace spirituel de la technologie.",
			FullDescription:  "Vous vivez votre foi comme un engagement central et considérez que certains domaines (prière, accompagnement spirituel, liturgie) doivent rester strictement humains. L'IA vous paraît au mieux un outil périphérique, au pire une intrusion.",
			CoreMotivation:   "Préserver l'intégrité de la vie spirituelle et de la transmission.",
			PrimaryFear:      "Voir le sacré banalisé ou remplacé par des automatismes.",
			Prototype:        proto(rng(4.0, 5.0, 2.0), rng(1.0, 2.4, 1.8), rng(4.0, 5.0, 2.0), rng(3.5, 5.0, 1.0), rng(1.0, 2.5, 0.6), rng(3.0, 5.0, 0.8), rng(1.0, 2.8, 0.8)),
			SubProfiles:      []domain.SubProfileID{"gardien_liturgique", "gardien_solitaire"},
		},
		{
			ID:               domain.ProfileSteward,
			Title:            "Intendant prudent",
			ShortDescription: "Une foi solide qui accueille l'IA avec discernement et garde-fous.",
			FullDescription:  "Votre engagement religieux est fort, mais vous voyez l'IA comme un outil à gérer plutôt qu'à rejeter. Vous cherchez des règles claires et une adoption mesurée, guidée par l'éthique.",
			CoreMotivation:   "Employer les nouveaux outils au service de la mission, sans perdre le discernement.",
			PrimaryFear:      "Une adoption précipitée qui échapperait à tout contrôle éthique.",
			Prototype:        proto(rng(3.8, 5.0, 1.8), rng(2.5, 3.6, 1.5), rng(3.0, 4.2, 1.2), rng(3.8, 5.0, 1.5), rng(1.5, 3.0, 0.5), rng(2.8, 4.5, 0.8), rng(2.5, 3.8, 0.8)),
			SubProfiles:      []domain.SubProfileID{"intendant_pasteur", "intendant_gestionnaire"},
		},
		{
			ID:               domain.ProfileInnovator,
			Title:            "Innovateur spirituel",
			ShortDescription: "Une foi vivante qui voit dans l'IA un levier pour la mission.",
			FullDescription:  "Vous conjuguez un engagement religieux marqué et un enthousiasme réel pour l'IA. Les frontières entre outils numériques et pratique spirituelle vous semblent perméables, et vous imaginez volontiers de nouveaux usages.",
			CoreMotivation:   "Rendre la foi accessible et féconde avec les moyens de son temps.",
			PrimaryFear:      "Une communauté qui se coupe du monde par frilosité.",
			Prototype:        proto(rng(3.8, 5.0, 1.8), rng(3.8, 5.0, 2.0), rng(1.0, 2.8, 1.5), rng(2.0, 3.6, 0.8), rng(2.5, 4.0, 0.6), rng(2.0, 4.0, 0.6), rng(3.8, 5.0, 1.4)),
			SubProfiles:      []domain.SubProfileID{"innovateur_missionnaire", "innovateur_mystique"},
		},
		{
			ID:               domain.ProfileSentinel,
			Title:            "Sentinelle éthique",
			ShortDescription: "Une vigilance éthique qui prime sur l'adhésion ou le rejet.",
			FullDescription:  "Ce qui vous mobilise avant tout, ce sont les questions de justice, de manipulation et de dignité humaine soulevées par l'IA. Votre foi nourrit cette vigilance sans la dicter entièrement.",
			CoreMotivation:   "Protéger la dignité humaine face aux systèmes automatisés.",
			PrimaryFear:      "Des technologies qui manipulent ou excluent les plus vulnérables.",
			Prototype:        proto(rng(2.2, 4.0, 1.0), rng(2.0, 3.4, 1.0), rng(2.5, 4.0, 0.8), rng(4.2, 5.0, 2.2), rng(2.0, 3.5, 0.6), rng(1.5, 3.5, 0.6), rng(1.8, 3.2, 0.8)),
			SubProfiles:      []domain.SubProfileID{"sentinelle_militante", "sentinelle_analyste"},
		},
		{
			ID:               domain.ProfilePragmatist,
			Title:            "Pragmatique adoptant",
			ShortDescription: "Un usage décomplexé de l'IA, peu lié aux questions religieuses.",
			FullDescription:  "L'IA fait partie de votre quotidien et vous l'évaluez surtout à son utilité. La dimension religieuse pèse peu dans ce jugement, et les frontières du sacré ne sont pas pour vous un enjeu central.",
			CoreMotivation:   "Gagner en efficacité et en liberté grâce aux bons outils.",
			PrimaryFear:      "Des interdits qui freinent sans raison l'usage d'outils utiles.",
			Prototype:        proto(rng(1.0, 2.8, 1.6), rng(3.8, 5.0, 2.0), rng(1.0, 2.6, 1.2), rng(1.0, 3.0, 1.0), rng(1.0, 2.8, 0.6), rng(1.0, 2.8, 0.8), rng(3.2, 5.0, 1.0)),
			SubProfiles:      []domain.SubProfileID{"pragmatique_efficace", "pragmatique_curieux"},
		},
		{
			ID:               domain.ProfileBridge,
			Title:            "Pont communautaire",
			ShortDescription: "Une position façonnée par la communauté et le dialogue.",
			FullDescription:  "Votre rapport à l'IA se construit d'abord avec les autres : responsables, groupe, paroisse. Vous occupez souvent une position médiane et aidez votre communauté à dialoguer sur ces questions.",
			CoreMotivation:   "Maintenir l'unité et le discernement collectif.",
			PrimaryFear:      "Une communauté divisée par la technologie.",
			Prototype:        proto(rng(2.8, 4.2, 1.0), rng(2.6, 3.8, 1.0), rng(2.4, 3.8, 0.8), rng(2.6, 4.0, 0.8), rng(2.0, 3.5, 0.6), rng(4.0, 5.0, 2.2), rng(2.8, 4.2, 0.8)),
			SubProfiles:      []domain.SubProfileID{"pont_mediateur", "pont_animateur"},
		},
		{
			ID:               domain.ProfileContemplative,
			Title:            "Sceptique contemplatif",
			ShortDescription: "Une réserve intérieure et réfléchie envers l'IA.",
			FullDescription:  "Vous vous interrogez sur ce que l'IA révèle de la conscience et de la relation. Cette réflexion, menée plutôt seul, vous rend réservé face à son adoption et prudent quant à l'avenir.",
			CoreMotivation:   "Comprendre en profondeur avant d'adhérer.",
			PrimaryFear:      "Confondre la machine avec une présence véritable.",
			Prototype:        proto(rng(2.5, 4.0, 1.0), rng(1.0, 2.5, 1.6), rng(2.8, 4.2, 1.0), rng(3.0, 4.5, 1.0), rng(3.5, 5.0, 1.8), rng(1.0, 2.8, 1.0), rng(1.0, 2.6, 1.0)),
			SubProfiles:      []domain.SubProfileID{"contemplatif_inquiet", "contemplatif_distant"},
		},
		{
			ID:               domain.ProfileVisionary,
			Title:            "Visionnaire prospectif",
			ShortDescription: "Un regard tourné vers l'avenir où foi et IA se transforment ensemble.",
			FullDescription:  "Vous pensez à long terme : comment les communautés, la transmission et la pratique évolueront avec l'IA. Votre optimisme est réfléchi et vous cherchez à préparer plutôt qu'à subir.",
			CoreMotivation:   "Préparer les communautés aux transformations à venir.",
			PrimaryFear:      "Être pris de court par des changements non anticipés.",
			Prototype:        proto(rng(2.0, 4.0, 0.8), rng(3.5, 5.0, 1.5), rng(1.5, 3.2, 0.8), rng(2.5, 4.0, 0.8), rng(2.5, 4.2, 0.8), rng(2.0, 4.0, 0.6), rng(4.2, 5.0, 2.2)),
			SubProfiles:      []domain.SubProfileID{"visionnaire_technophile", "visionnaire_integrateur"},
		},
	}
}

func defaultSubProfiles() []domain.SubProfileDefinition {
	sub := func(id domain.SubProfileID, parent domain.ProfileID, title, desc string, p domain.Prototype) domain.SubProfileDefinition {
		return domain.SubProfileDefinition{ID: id, Parent: parent, Title: title, Description: desc, Prototype: p}
	}
	return []domain.SubProfileDefinition{
		sub("gardien_liturgique", domain.ProfileGuardian, "Gardien liturgique",
			"Votre vigilance s'exprime dans et par la communauté rassemblée.",
			domain.Prototype{domain.DimCommunityInfluence: rng(3.8, 5.0, 1.5), domain.DimSacredBoundary: rng(4.5, 5.0, 1.5)}),
		sub("gardien_solitaire", domain.ProfileGuardian, "Gardien solitaire",
			"Votre vigilance est d'abord intérieure et personnelle.",
			domain.Prototype{domain.DimCommunityInfluence: rng(1.0, 3.2, 1.5), domain.DimPsychologicalPerception: rng(2.5, 4.0, 1.0)}),
		sub("intendant_pasteur", domain.ProfileSteward, "Intendant pasteur",
			"Vous pensez l'IA à partir du soin des personnes et de la communauté.",
			domain.Prototype{domain.DimCommunityInfluence: rng(3.5, 5.0, 1.5), domain.DimAIOpenness: rng(2.5, 3.2, 1.0)}),
		sub("intendant_gestionnaire", domain.ProfileSteward, "Intendant gestionnaire",
			"Vous pensez l'IA en termes d'organisation et de bonne gestion.",
			domain.Prototype{domain.DimAIOpenness: rng(3.0, 3.8, 1.5), domain.DimFutureOrientation: rng(3.0, 4.0, 1.0)}),
		sub("innovateur_missionnaire", domain.ProfileInnovator, "Innovateur missionnaire",
			"L'IA est pour vous un moyen d'annoncer et de rejoindre.",
			domain.Prototype{domain.DimCommunityInfluence: rng(3.5, 5.0, 1.5), domain.DimFutureOrientation: rng(4.0, 5.0, 1.0)}),
		sub("innovateur_mystique", domain.ProfileInnovator, "Innovateur mystique",
			"L'IA nourrit chez vous une réflexion sur la conscience et l'esprit.",
			domain.Prototype{domain.DimPsychologicalPerception: rng(3.5, 5.0, 1.5), domain.DimSacredBoundary: rng(1.5, 3.0, 1.0)}),
		sub("sentinelle_militante", domain.ProfileSentinel, "Sentinelle militante",
			"Votre vigilance se traduit en engagement collectif.",
			domain.Prototype{domain.DimCommunityInfluence: rng(3.5, 5.0, 1.2), domain.DimEthicalConcern: rng(4.6, 5.0, 1.5)}),
		sub("sentinelle_analyste", domain.ProfileSentinel, "Sentinelle analyste",
			"Votre vigilance passe par l'étude et l'usage informé.",
			domain.Prototype{domain.DimAIOpenness: rng(2.8, 3.6, 1.2), domain.DimPsychologicalPerception: rng(1.5, 3.0, 1.0)}),
		sub("pragmatique_efficace", domain.ProfilePragmatist, "Pragmatique efficace",
			"Vous voyez l'IA comme un outil, sans projection psychologique.",
			domain.Prototype{domain.DimFutureOrientation: rng(3.8, 5.0, 1.2), domain.DimPsychologicalPerception: rng(1.0, 2.2, 1.0)}),
		sub("pragmatique_curieux", domain.ProfilePragmatist, "Pragmatique curieux",
			"Vous explorez l'IA avec curiosité pour ce qu'elle révèle.",
			domain.Prototype{domain.DimPsychologicalPerception: rng(2.5, 4.0, 1.2), domain.DimEthicalConcern: rng(2.5, 3.5, 1.0)}),
		sub("pont_mediateur", domain.ProfileBridge, "Pont médiateur",
			"Vous aidez les positions opposées à se comprendre.",
			domain.Prototype{domain.DimEthicalConcern: rng(3.2, 4.5, 1.2), domain.DimAIOpenness: rng(2.8, 3.6, 1.0)}),
		sub("pont_animateur", domain.ProfileBridge, "Pont animateur",
			"Vous entraînez votre communauté vers de nouvelles pratiques.",
			domain.Prototype{domain.DimFutureOrientation: rng(3.5, 5.0, 1.2), domain.DimAIOpenness: rng(3.2, 4.2, 1.0)}),
		sub("contemplatif_inquiet", domain.ProfileContemplative, "Contemplatif inquiet",
			"Votre réserve est portée par une inquiétude éthique marquée.",
			domain.Prototype{domain.DimEthicalConcern: rng(4.0, 5.0, 1.5), domain.DimFutureOrientation: rng(1.0, 2.0, 1.0)}),
		sub("contemplatif_distant", domain.ProfileContemplative, "Contemplatif distant",
			"Votre réserve s'accompagne d'une distance vis-à-vis des cadres collectifs.",
			domain.Prototype{domain.DimCommunityInfluence: rng(1.0, 2.2, 1.5), domain.DimReligiosity: rng(2.5, 3.5, 1.0)}),
		sub("visionnaire_technophile", domain.ProfileVisionary, "Visionnaire technophile",
			"Votre vision de l'avenir fait une large place à la technologie.",
			domain.Prototype{domain.DimAIOpenness: rng(4.3, 5.0, 1.5), domain.DimSacredBoundary: rng(1.0, 2.4, 1.0)}),
		sub("visionnaire_integrateur", domain.ProfileVisionary, "Visionnaire intégrateur",
			"Votre vision cherche à intégrer tradition et innovation.",
			domain.Prototype{domain.DimReligiosity: rng(3.2, 4.5, 1.5), domain.DimEthicalConcern: rng(3.2, 4.2, 1.0)}),
	}
}

func defaultNarratives() map[domain.ProfileID]ProfileNarrative {
	return map[domain.ProfileID]ProfileNarrative{
		domain.ProfileGuardian: {
			Headline:  "Vous veillez sur ce qui doit rester sacré",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre religiosité ({religiosity}) et votre attachement aux frontières du sacré ({sacredBoundary}) structurent votre regard, tandis que votre ouverture à l'IA reste mesurée ({aiOpenness}).",
			Strengths: []string{
				"Une cohérence forte entre convictions et pratiques.",
				"Une capacité à nommer clairement ce qui ne doit pas être délégué.",
			},
			BlindSpots: []string{
				"Le risque de rejeter en bloc des usages qui pourraient servir votre communauté.",
			},
		},
		domain.ProfileSteward: {
			Headline:  "Vous accueillez l'IA avec discernement",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre engagement religieux ({religiosity}) s'accompagne d'une vigilance éthique ({ethicalConcern}) et d'une ouverture à l'IA mesurée ({aiOpenness}).",
			Strengths: []string{
				"Un équilibre entre fidélité et adaptation.",
				"Le souci de poser des règles avant d'adopter.",
			},
			BlindSpots: []string{
				"Une prudence qui peut retarder des décisions nécessaires.",
			},
		},
		domain.ProfileInnovator: {
			Headline:  "Vous voyez dans l'IA un levier pour la mission",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre foi ({religiosity}) et votre ouverture à l'IA ({aiOpenness}) se renforcent mutuellement, avec un regard résolument tourné vers l'avenir ({futureOrientation}).",
			Strengths: []string{
				"Une créativité au service de la transmission.",
				"Une aisance à relier tradition et outils contemporains.",
			},
			BlindSpots: []string{
				"Le risque de sous-estimer ce que certains usages coûtent à la vie spirituelle.",
			},
		},
		domain.ProfileSentinel: {
			Headline:  "Vous placez l'éthique au premier plan",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre préoccupation éthique ({ethicalConcern}) domine votre rapport à l'IA ({aiOpenness}), nourrie par une religiosité de {religiosity}.",
			Strengths: []string{
				"Une attention aiguë aux plus vulnérables.",
				"Une capacité à repérer les risques de manipulation.",
			},
			BlindSpots: []string{
				"Une vigilance qui peut se transformer en méfiance généralisée.",
			},
		},
		domain.ProfilePragmatist: {
			Headline:  "Vous jugez l'IA à son utilité",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre ouverture à l'IA ({aiOpenness}) est élevée et peu conditionnée par la religiosité ({religiosity}) ou les frontières du sacré ({sacredBoundary}).",
			Strengths: []string{
				"Une adoption rapide et concrète des outils.",
				"Un regard dépassionné sur la technologie.",
			},
			BlindSpots: []string{
				"Des enjeux éthiques ou spirituels qui peuvent passer inaperçus.",
			},
		},
		domain.ProfileBridge: {
			Headline:  "Votre position se construit avec votre communauté",
			Narrative: "Profil dominant : {title} ({subprofile}). L'influence communautaire ({communityInfluence}) oriente votre regard, avec une ouverture à l'IA ({aiOpenness}) et une religiosité ({religiosity}) plutôt médianes.",
			Strengths: []string{
				"Un talent pour faire dialoguer des sensibilités différentes.",
				"Une attention à l'unité du groupe.",
			},
			BlindSpots: []string{
				"Une opinion personnelle qui peut rester dans l'ombre du consensus.",
			},
		},
		domain.ProfileContemplative: {
			Headline:  "Vous prenez le temps de comprendre avant d'adhérer",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre perception psychologique de l'IA ({psychologicalPerception}) nourrit une réserve marquée ({aiOpenness}) et un regard prudent sur l'avenir ({futureOrientation}).",
			Strengths: []string{
				"Une profondeur de réflexion sur la conscience et la relation.",
				"Une résistance aux effets de mode.",
			},
			BlindSpots: []string{
				"Un isolement possible dans la réflexion.",
			},
		},
		domain.ProfileVisionary: {
			Headline:  "Vous préparez l'avenir de la foi à l'ère de l'IA",
			Narrative: "Profil dominant : {title} ({subprofile}). Votre orientation vers l'avenir ({futureOrientation}) et votre ouverture à l'IA ({aiOpenness}) dessinent une vision de long terme, avec une religiosité de {religiosity}.",
			Strengths: []string{
				"Une capacité d'anticipation.",
				"Un optimisme qui mobilise.",
			},
			BlindSpots: []string{
				"Le risque de négliger les inquiétudes du présent.",
			},
		},
	}
}
