package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys are the English texts.
var ptBR = []struct{ key, text string }{
	{"Territory", "Territorio"},
	{"Army", "Exercito"},
	{"Troops", "Tropas"},
	{"Blue", "Azul"},
	{"Red", "Vermelho"},
	{"WORLD MAP", "MAPA DO MUNDO"},
	{"[ SECRET MISSION ]: ", "[ MISSAO SECRETA ]: "},
	{"Conquer at least %d territories.\n", "Conquistar pelo menos %d territorios.\n"},
	{"Wipe out the %s army.\n", "Eliminar totalmente o exercito %s.\n"},
	{"\n--- ACTION MENU ---\n", "\n--- MENU DE ACAO ---\n"},
	{"1. Attack Territory\n", "1. Atacar Territorio\n"},
	{"2. Check Mission (Victory)\n", "2. Verificar Objetivo (Vitoria)\n"},
	{"0. Quit Game\n", "0. Sair do Jogo\n"},
	{"Choose an option: ", "Escolha uma opcao: "},
	{"\n>>> ATTACK PHASE <<<\n", "\n>>> FASE DE ATAQUE <<<\n"},
	{"Enter the ORIGIN territory ID or name (yours): ", "Digite o ID ou nome do territorio de ORIGEM (seu): "},
	{"Enter the TARGET territory ID or name (enemy): ", "Digite o ID ou nome do territorio de DESTINO (inimigo): "},
	{"Invalid IDs!\n", "IDs invalidos!\n"},
	{"You can only attack from a territory of yours!\n", "Voce so pode atacar partindo de um territorio seu!\n"},
	{"You cannot attack your own territory!\n", "Voce nao pode atacar seu proprio territorio!\n"},
	{"Not enough troops to attack (minimum %d).\n", "Tropas insuficientes para atacar (minimo %d).\n"},
	{"The game is over.\n", "O jogo terminou.\n"},
	{"\nBattle: %s (Atk) vs %s (Def)\n", "\nBatalha: %s (Atk) vs %s (Def)\n"},
	{"Dice: Attacker [%d] x Defender [%d]\n", "Dados: Atacante [%d] x Defensor [%d]\n"},
	{"Attacker wins! Defender loses 1 troop.\n", "Vitoria do Atacante! Defensor perde 1 tropa.\n"},
	{"The defense held! Attacker loses 1 troop.\n", "Defesa segurou! Atacante perde 1 tropa.\n"},
	{">>> TERRITORY CONQUERED! <<<\n", ">>> TERRITORIO CONQUISTADO! <<<\n"},
	{"Territory %s now belongs to the %s army!\n", "O territorio %s agora pertence ao exercito %s!\n"},
	{"\n*** CONGRATULATIONS! You completed your mission and WON the game! ***\n", "\n*** PARABENS! Voce completou sua missao e VENCEU o jogo! ***\n"},
	{"\n--- Mission not complete yet. Keep fighting! ---\n", "\n--- Missao ainda nao cumprida. Continue lutando! ---\n"},
	{"Leaving the game...\n", "Saindo do jogo...\n"},
	{"Invalid option!\n", "Opcao invalida!\n"},
	{"\nPress ENTER to continue...", "\nPressione ENTER para continuar..."},
}

func init() {
	for _, m := range ptBR {
		if err := message.SetString(language.BrazilianPortuguese, m.key, m.text); err != nil {
			panic(err)
		}
	}
}

// Locale maps a locale name to a supported language. Anything not Portuguese falls back to English.
func Locale(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	if base, _ := tag.Base(); base.String() == "pt" {
		return language.BrazilianPortuguese
	}
	return language.English
}
