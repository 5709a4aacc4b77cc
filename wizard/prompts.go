package wizard

import (
	"fmt"

	"ResumeBot/model"
)

// Messages sent outside the step graph.
const (
	ClosingMessage        = "✨ *Processo concluído!* Sempre que precisar criar um novo currículo ou ajustar algo, é só digitar /start novamente."
	CancelMessage         = "Processo cancelado. Use /start para recomeçar."
	HelpMessage           = "Comandos:\n/start - criar um novo currículo\n/cancel - cancelar o processo atual\n/help - mostrar esta ajuda"
	IdleMessage           = "Use /start para criar seu currículo."
	DeclineMessage        = "✅ Processo encerrado. Use /start para começar novamente."
	UnknownCommandMessage = "Comando não reconhecido.\n\n" + HelpMessage
	FailureMessage        = "⚠️ Não foi possível gerar seu currículo agora. Use /start para tentar novamente."
)

const (
	msgWelcome = "👋 *Olá!* Que bom ter você aqui! Vamos criar seu *Currículo* de forma *simples e gratuita* em poucos minutos.\n\n" +
		"Para *começar*, digite *S*. Se preferir sair, digite *N*."
	msgName          = "📌 Agora, me diga seu *nome completo*, por favor:"
	msgAge           = "🎂 Qual a sua *idade*? (Apenas números, entre 14 e 99 anos)"
	msgMaritalStatus = "💍 Para seguirmos, qual o seu *estado civil*? (Ex: Solteiro(a), Casado(a))"
	msgPhone         = "📞 Certo! Agora, me informe seu *telefone* (apenas números, com DDD):"
	msgEmail         = "📧 Por favor, digite seu *melhor e-mail* para contato:"
	msgHighSchool    = "✅ Vamos para a *Formação Acadêmica*.\nVocê *concluiu* o *Ensino Médio*? Digite *S* para Sim ou *N* para Não."
	msgHighSchoolYr  = "Ótimo! Em que *ano* você *concluiu* o Ensino Médio? (Ex: 2020)"
	msgDegreeCount   = "Interessante! Quantas *Graduações* você possui atualmente? (Digite *0* se não tiver nenhuma)"
	msgPostCount     = "Ótimo! Quantas *Pós-Graduações* você possui? (Digite *0* se não tiver nenhuma)"
	msgContractType  = "💼 Agora vamos para a *Experiência Profissional*.\nVocê se identifica como *trabalhador CLT* ou *Microempreendedor Individual (MEI)*?\n\n" +
		"*1* para *CLT*\n*2* para *MEI*"
	msgServices = "Entendido! Como *MEI*, quais são os principais *tipos de trabalho* ou serviços que você realiza? Liste-os *separados por vírgula*.\n\n" +
		"_Ex: Desenvolvedor Web, Consultor de Marketing, Designer Gráfico_"
	msgFirstCompany = "🏢 Perfeito! Qual o *nome da última empresa* que você trabalhou com *carteira assinada*?\n\n" +
		"_Se não houver, digite N para pular esta seção._"
	msgNextCompany = "Qual o *nome da próxima empresa* (Experiência %d)?\n\n_Se não houver, digite N para pular esta seção._"
	msgJobTitle    = "Qual o *cargo exercido* na %s?"
	msgJobStart    = "Agora, qual a *data de admissão*? (Formato obrigatório MM/AAAA. Ex: 01/2020)"
	msgJobEnd      = "E a *data de demissão ou saída*? (Formato obrigatório MM/AAAA ou Atual. Ex: 12/2022 ou Atual)"
	msgActivities  = "Liste suas *principais atividades e responsabilidades* neste cargo.\n" +
		"Você pode usar uma por linha ou separá-las por ponto e vírgula (;).\n\n" +
		"_Exemplo:_\n_- Gestão de projetos_\n_- Desenvolvimento de software_\n\n_Se preferir não informar, digite N._"
	msgResults = "Excelente! E quais foram seus *principais resultados ou conquistas* nessa experiência? (Seja específico, com números se possível!)\n\n" +
		"Você pode usar uma por linha ou separá-las por ponto e vírgula (;).\n\n" +
		"_Exemplo:_\n_- Redução de custos em 15%_\n_- Aumento de vendas em 20%_\n\n_Se preferir não informar, digite N._"
	msgLanguagesGate = "🗣️ Chegamos na seção de *Idiomas*! Você possui algum *curso de idioma*?\n\nDigite *S* para Sim ou *N* para Não."
	msgLangInst      = "Qual a *instituição* do idioma %d?"
	msgLangName      = "Qual o *nome do idioma* %d? (Ex: Inglês)"
	msgLangLevel     = "Qual o *nível de proficiência* do idioma %d? Digite a letra correspondente:\n\n" +
		"*B* para *Básico*\n*I* para *Intermediário*\n*A* para *Avançado*"
	msgLangStart = "Em que *ano* você *iniciou* o curso de idioma %d? (Ex: 2020)"
	msgLangEnd   = "Em que *ano* você *concluiu* o idioma %d? Ou digite *Cursando* se ainda estiver estudando.\n\n_Ex: 2018 ou Cursando_"
	msgCourses   = "📚 Para finalizar, liste seus *cursos adicionais* e *certificações* (se houver), separados por vírgula.\n\n" +
		"_Ex: Java, JavaScript, Excel Avançado, Liderança e Gestão de Equipes_\n\n_Se não houver, digite N._"
	msgDone = "🎉 *Parabéns!* Seu currículo foi *gerado com sucesso* e está sendo enviado para você agora mesmo!\n\n" +
		"Por favor, *verifique o arquivo PDF* anexo."

	msgAcademicInst   = "Qual o nome da *Universidade* ou *Faculdade* da %s?"
	msgAcademicCourse = "Qual é o *Curso* da %s? (Ex: %s)"
	msgAcademicStatus = "Qual a *situação* da %s? Digite *C* para Concluído ou *I* para Incompleto (Cursando)."
	msgAcademicYear   = "Em que *ano* a %s foi *concluída*? (Ex: 2025)"
	msgMore           = "Deseja adicionar *%s*? Digite *S* para Sim ou *N* para Não."
)

// Re-prompts sent when a step's validator rejects the answer.
const (
	errConfirmStart  = "⚠️ *Opção inválida!* Digite *S* para começar ou *N* para sair."
	errName          = "⚠️ *Nome inválido!* Por favor, digite seu nome completo (mínimo 2 palavras)."
	errAge           = "⚠️ *Idade inválida!* Digite apenas números entre 14 e 99 anos."
	errMaritalStatus = "⚠️ *Estado civil inválido!* Por favor, informe seu estado civil."
	errPhone         = "⚠️ *Telefone inválido!* Use apenas números (8 a 15 dígitos) com DDD."
	errEmail         = "⚠️ *E-mail inválido!* Por favor, verifique e tente novamente. Ex: seu.email@dominio.com"
	errYesNo         = "⚠️ *Opção inválida!* Digite *S* para Sim ou *N* para Não:"
	errYear          = "⚠️ *Ano inválido!* Digite o ano com 4 dígitos. Ex: 2020"
	errCount         = "⚠️ *Quantidade inválida!* Digite um número inteiro (Ex: 0, 1, 2)."
	errInstitution   = "⚠️ *Nome da faculdade inválido!* Por favor, digite o nome da Universidade ou Faculdade."
	errCourse        = "⚠️ *Nome do curso inválido!* Por favor, digite o curso."
	errStatus        = "⚠️ *Opção inválida!* Digite *C* para Concluído ou *I* para Incompleto (Cursando)."
	errContractType  = "⚠️ *Opção inválida!* Digite *1* para CLT ou *2* para Microempreendedor Individual."
	errServices      = "⚠️ *Lista inválida!* Informe ao menos um serviço, separados por vírgula."
	errCompany       = "⚠️ *Nome da empresa inválido!* Por favor, digite o nome da empresa ou N para pular."
	errJobTitle      = "⚠️ *Cargo inválido!* Por favor, digite o cargo exercido."
	errJobStart      = "⚠️ *Data inválida!* Formato obrigatório MM/AAAA. Ex: 01/2020"
	errJobEnd        = "⚠️ *Data inválida!* Formato obrigatório MM/AAAA ou Atual."
	errNarrative     = "⚠️ *Entrada inválida!* Escreva o texto ou digite N para pular."
	errLangInst      = "⚠️ *Instituição inválida!* Por favor, digite o nome da instituição do idioma."
	errLangName      = "⚠️ *Nome do idioma inválido!* Por favor, digite o nome do idioma."
	errLangLevel     = "⚠️ *Nível inválido!* Digite *B* (Básico), *I* (Intermediário) ou *A* (Avançado)."
	errLangEnd       = "⚠️ *Entrada inválida!* Digite o ano com 4 dígitos (Ex: 2018) ou Cursando."
	errCourses       = "⚠️ *Entrada inválida!* Liste os cursos separados por vírgula ou digite N."
)

// itemLabel names the academic item being filled, e.g. "Graduação 1 de 2".
func itemLabel(st model.ConversationState) string {
	noun := "Graduação"
	if st.Track == model.TrackPostDegree {
		noun = "Pós-Graduação"
	}
	n := st.Index + 1
	if st.Declared >= n {
		return fmt.Sprintf("%s %d de %d", noun, n, st.Declared)
	}
	return fmt.Sprintf("%s %d", noun, n)
}

func constant(msg string) func(model.ConversationState, *model.Record) string {
	return func(model.ConversationState, *model.Record) string {
		return msg
	}
}

// numbered formats msg with the 1-based position of the current item.
func numbered(msg string) func(model.ConversationState, *model.Record) string {
	return func(st model.ConversationState, _ *model.Record) string {
		return fmt.Sprintf(msg, st.Index+1)
	}
}

func academic(msg string) func(model.ConversationState, *model.Record) string {
	return func(st model.ConversationState, _ *model.Record) string {
		return fmt.Sprintf(msg, itemLabel(st))
	}
}
