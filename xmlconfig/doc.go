/*
Package xmlconfig reads XML component configuration into a registry.

A document has a <beans> root. Plain children are bean definitions and
aliases; children in other namespaces are handed to the NamespaceHandler
registered for that namespace:

	<beans xmlns="http://suparena.com/schema/beans"
	       xmlns:p="http://suparena.com/schema/p"
	       xmlns:mongo="http://suparena.com/schema/mongo">
	    <bean id="mongo" class="driver.Client" p:uri="mongodb://localhost"/>
	    <mongo:mapping-converter base-package="example.com/app/model"/>
	</beans>

Problems found while reading are collected in Problems. Under
PolicyCollect reading continues past malformed elements; under
PolicyFailFast the first one stops it. Missing references are always fatal.
*/
package xmlconfig
