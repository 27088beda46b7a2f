package seed

// Catalog is the starter catalog of the store.
var Catalog = []Book{
	{
		Title:       "O Senhor dos Anéis",
		Author:      "J.R.R. Tolkien",
		Price:       59.9,
		Genre:       "Fantasia",
		Description: "Uma épica jornada na Terra Média onde a pequena comunidade da Sociedade do Anel enfrenta perigos inimagináveis para destruir o Anel do Poder. Essa missão é crucial para impedir que o Senhor das Trevas, Sauron, domine o mundo com sua tirania e escuridão.",
	},
	{
		Title:       "Harry Potter e o Prisioneiro de Azkaban",
		Author:      "J.K. Rowling",
		Price:       69.9,
		Genre:       "Fantasia",
		Description: "Harry Potter retorna para seu terceiro ano em Hogwarts enfrentando o misterioso e perigoso fugitivo Sirius Black. Entre novas descobertas e desafios, ele descobre segredos importantes sobre seu passado e o verdadeiro significado da amizade e coragem.",
	},
	{
		Title:       "Cidade dos Ossos",
		Author:      "Cassandra Clare",
		Price:       54.9,
		Genre:       "Fantasia",
		Description: "Clary Fray é lançada em um mundo oculto de Caçadores de Sombras, seres que lutam contra demônios. Ao descobrir sua verdadeira identidade, ela enfrenta perigos sobrenaturais e segredos familiares que mudarão sua vida para sempre.",
	},
	{
		Title:       "Verity",
		Author:      "Colleen Hoover",
		Price:       49.9,
		Genre:       "Suspense",
		Description: "Uma escritora aceita terminar o manuscrito da autora Verity Crawford, mas ao investigar seus papéis pessoais, descobre segredos sombrios e perturbadores que colocam em dúvida a verdade sobre sua vida e suas intenções.",
	},
	{
		Title:       "Garota Exemplar",
		Author:      "Gillian Flynn",
		Price:       46.9,
		Genre:       "Suspense",
		Description: "Quando Amy desaparece no dia do seu aniversário de casamento, todas as suspeitas recaem sobre seu marido Nick. A trama revela reviravoltas inesperadas e mostra as camadas ocultas de um relacionamento tóxico e cheio de manipulações.",
	},
	{
		Title:       "A Empregada",
		Author:      "Freida McFadden",
		Price:       59.9,
		Genre:       "Suspense",
		Description: "Ao aceitar um emprego como empregada doméstica em uma mansão, a protagonista descobre que a família esconde segredos sombrios. Aos poucos, ela é envolvida em uma trama de suspense e mistério, onde nada é o que parece.",
	},
	{
		Title:       "O Silêncio dos Inocentes",
		Author:      "Thomas Harris",
		Price:       52.9,
		Genre:       "Suspense",
		Description: "Clarice Starling, jovem agente do FBI, busca a ajuda do brilhante mas perturbado Dr. Hannibal Lecter para capturar um serial killer. A história explora os limites entre sanidade e loucura, enquanto Clarice enfrenta seus próprios demônios.",
	},
	{
		Title:       "1984",
		Author:      "George Orwell",
		Price:       52.5,
		Genre:       "Ficção distópica",
		Description: "Em um futuro sombrio e totalitário, o protagonista Winston Smith luta para preservar sua individualidade em uma sociedade controlada pelo Grande Irmão. O livro é uma crítica poderosa à vigilância, repressão e manipulação da verdade.",
	},
	{
		Title:       "É Assim que Acaba",
		Author:      "Colleen Hoover",
		Price:       42.9,
		Genre:       "Drama",
		Description: "Lily enfrenta um relacionamento complicado e abusivo enquanto tenta construir uma nova vida. A narrativa aborda temas delicados como amor, violência doméstica e superação, trazendo uma mensagem de esperança e coragem.",
	},
	{
		Title:       "Normal People",
		Author:      "Sally Rooney",
		Price:       38.5,
		Genre:       "Drama",
		Description: "Acompanhe a complexa relação entre Marianne e Connell, desde o ensino médio até a universidade. A obra explora sentimentos intensos, vulnerabilidades e os desafios do amor em meio a inseguranças pessoais.",
	},
	{
		Title:       "O Pequeno Príncipe",
		Author:      "Antoine de Saint-Exupéry",
		Price:       29.9,
		Genre:       "Fábula / Fantasia",
		Description: "Um pequeno príncipe viaja por planetas diferentes, descobrindo lições profundas sobre amor, amizade e a essência da vida. A fábula encantadora toca corações de todas as idades com sua simplicidade e sabedoria.",
	},
	{
		Title:       "Les Misérables",
		Author:      "Victor Hugo",
		Price:       58.0,
		Genre:       "Drama",
		Description: "Um épico da literatura que narra a vida de Jean Valjean, um ex-prisioneiro em busca de redenção na França do século XIX, enfrentando injustiças sociais, amor e luta pela liberdade.",
	},
	{
		Title:       "Orgulho e Preconceito",
		Author:      "Jane Austen",
		Price:       45.9,
		Genre:       "Romance",
		Description: "A história de Elizabeth Bennet e Mr. Darcy revela as complexidades do amor, classe social e julgamentos precipitados na Inglaterra do século XIX, marcada por diálogos afiados e personagens inesquecíveis.",
	},
	{
		Title:       "A Culpa é das Estrelas",
		Author:      "John Green",
		Price:       39.9,
		Genre:       "Drama",
		Description: "Hazel e Gus, dois jovens com câncer, encontram no amor e na amizade forças para enfrentar suas limitações e descobrir a beleza da vida mesmo em meio à dor e à incerteza.",
	},
	{
		Title:       "Holly",
		Author:      "Stephen King",
		Price:       44.9,
		Genre:       "Suspense",
		Description: "Holly Gibney é uma investigadora particular que enfrenta casos complexos e ameaças perigosas, mostrando coragem e inteligência em meio a situações de suspense e mistério.",
	},
	{
		Title:       "Talvez Você Deva Conversar com Alguém",
		Author:      "Lori Gottlieb",
		Price:       34.9,
		Genre:       "Autoajuda",
		Description: "Uma terapeuta relata suas próprias sessões e desafios pessoais, revelando a importância do autoconhecimento e da terapia para o crescimento emocional e a superação de crises.",
	},
	{
		Title:       "A Sutil Arte de Ligar o F*da-se",
		Author:      "Mark Manson",
		Price:       36.0,
		Genre:       "Autoajuda",
		Description: "Um guia direto e irreverente que ensina como focar no que realmente importa na vida, aceitando limitações e escolhas para alcançar uma existência mais significativa e feliz.",
	},
	{
		Title:       "As Coisas que Você Só Vê Quando Desacelera",
		Author:      "Haemin Sunim",
		Price:       32.0,
		Genre:       "Autoajuda",
		Description: "Reflexões e ensinamentos para desacelerar o ritmo da vida, encontrar paz interior e cultivar a felicidade em meio às pressões e desafios do cotidiano moderno.",
	},
}
